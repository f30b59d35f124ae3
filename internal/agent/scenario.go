package agent

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk shape of an offline scenario: one document with
// the four collaborator payloads written as plain YAML values.
type scenarioFile struct {
	Budget     any `yaml:"budget"`
	Flights    any `yaml:"flights"`
	Hotels     any `yaml:"hotels"`
	Activities any `yaml:"activities"`
}

// ScenarioSource serves canned collaborator payloads from a YAML scenario
// file. It stands in for the live agents in demos and tests; the payloads
// still pass through the validator like any scraped response.
type ScenarioSource struct {
	budget     json.RawMessage
	flights    json.RawMessage
	hotels     json.RawMessage
	activities json.RawMessage
}

// LoadScenario reads a scenario file and converts each payload to JSON.
func LoadScenario(path string) (*ScenarioSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "agent: read scenario %s", path)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, eris.Wrapf(err, "agent: parse scenario %s", path)
	}

	src := &ScenarioSource{}
	for _, part := range []struct {
		name  string
		value any
		dst   *json.RawMessage
	}{
		{AgentBudget, file.Budget, &src.budget},
		{AgentFlights, file.Flights, &src.flights},
		{AgentHotels, file.Hotels, &src.hotels},
		{AgentActivities, file.Activities, &src.activities},
	} {
		if part.value == nil {
			return nil, eris.Errorf("agent: scenario %s missing %q section", path, part.name)
		}
		encoded, err := json.Marshal(part.value)
		if err != nil {
			return nil, eris.Wrapf(err, "agent: encode scenario %s section %q", path, part.name)
		}
		*part.dst = encoded
	}
	return src, nil
}

func (s *ScenarioSource) Budget(ctx context.Context, req BudgetRequest) (json.RawMessage, error) {
	return s.budget, nil
}

func (s *ScenarioSource) Flights(ctx context.Context, req FlightsRequest) (json.RawMessage, error) {
	return s.flights, nil
}

func (s *ScenarioSource) Hotels(ctx context.Context, req HotelsRequest) (json.RawMessage, error) {
	return s.hotels, nil
}

func (s *ScenarioSource) Activities(ctx context.Context, req ActivitiesRequest) (json.RawMessage, error) {
	return s.activities, nil
}
