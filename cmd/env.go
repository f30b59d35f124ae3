package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/tripsmith/trip-cli/internal/agent"
	"github.com/tripsmith/trip-cli/internal/config"
	"github.com/tripsmith/trip-cli/internal/ledger"
	"github.com/tripsmith/trip-cli/internal/planner"
)

// plannerEnv bundles the planner and the ledger it records into, so commands
// can close the backend when they finish.
type plannerEnv struct {
	Planner *planner.Planner
	Ledger  ledger.Ledger
}

func (e *plannerEnv) Close() {
	_ = e.Ledger.Close()
}

// initPlanner builds the planner from config. When scenarioPath is non-empty
// the collaborator calls are served from the scenario file instead of HTTP.
func initPlanner(ctx context.Context, scenarioPath string) (*plannerEnv, error) {
	l, err := openLedger(ctx, cfg.Ledger)
	if err != nil {
		return nil, err
	}

	var source agent.Source
	if scenarioPath != "" {
		source, err = agent.LoadScenario(scenarioPath)
		if err != nil {
			_ = l.Close()
			return nil, err
		}
	} else {
		source = agent.NewHTTPSource(
			agent.Endpoints{
				Budget:     cfg.Agents.BudgetURL,
				Flights:    cfg.Agents.FlightsURL,
				Hotels:     cfg.Agents.HotelsURL,
				Activities: cfg.Agents.ActivitiesURL,
			},
			agent.HTTPOptions{
				Timeout:    time.Duration(cfg.Agents.TimeoutSecs) * time.Second,
				MaxRetries: cfg.Agents.MaxRetries,
				RateLimit:  rate.Limit(cfg.Agents.RateLimit),
			},
		)
	}

	return &plannerEnv{
		Planner: planner.New(source, l),
		Ledger:  l,
	}, nil
}

func openLedger(ctx context.Context, lcfg config.LedgerConfig) (ledger.Ledger, error) {
	switch lcfg.Driver {
	case "", "memory":
		return ledger.NewMemory(), nil

	case "sqlite":
		l, err := ledger.NewSQLite(lcfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := l.Migrate(ctx); err != nil {
			_ = l.Close()
			return nil, err
		}
		return l, nil

	case "postgres":
		l, err := ledger.NewPostgres(ctx, lcfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := l.Migrate(ctx); err != nil {
			_ = l.Close()
			return nil, err
		}
		return l, nil

	case "redis":
		return ledger.OpenRedis(ctx, lcfg.RedisAddr, lcfg.RedisPassword, lcfg.RedisDB)

	default:
		return nil, eris.Errorf("unknown ledger driver %q", lcfg.Driver)
	}
}
