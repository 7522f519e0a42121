package bbnf_test

import (
	"os"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/bbnf"
)

// scenarioFile mirrors testdata/scenarios.toml: a flat table of grammar,
// input, and expected outcome, one row per end-to-end scenario this module
// is checked against.
type scenarioFile struct {
	Scenario []scenario `toml:"scenario"`
}

type scenario struct {
	Name                string `toml:"name"`
	Grammar             string `toml:"grammar"`
	Input               string `toml:"input"`
	ExpectSuccess       bool   `toml:"expect_success"`
	ExpectErrorContains string `toml:"expect_error_contains"`
}

func Test_Scenarios(t *testing.T) {
	a := assert.New(t)

	data, err := os.ReadFile("testdata/scenarios.toml")
	if !a.NoError(err) {
		return
	}

	var sf scenarioFile
	if !a.NoError(toml.Unmarshal(data, &sf)) {
		return
	}
	if !a.NotEmpty(sf.Scenario) {
		return
	}

	for _, sc := range sf.Scenario {
		t.Run(sc.Name, func(t *testing.T) {
			assert := assert.New(t)

			mp := bbnf.NewMetaParser()
			mp.Feed(sc.Grammar)
			p, err := mp.Parse()
			if !assert.NoError(err) {
				return
			}

			p.Feed(sc.Input)
			_, err = p.Parse()

			if sc.ExpectSuccess {
				assert.NoError(err)
				return
			}
			if !assert.Error(err) {
				return
			}
			if sc.ExpectErrorContains != "" {
				assert.True(strings.Contains(err.Error(), sc.ExpectErrorContains), "error %q does not contain %q", err.Error(), sc.ExpectErrorContains)
			}
		})
	}
}
