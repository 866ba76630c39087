package exporter

import (
	"testing"

	"github.com/lithammer/dedent"
	"github.com/mohae/deepcopy"
	"gotest.tools/v3/assert"
)

func defaultConfigForTest() Config {
	return Config{
		MetricsPort:  DefaultMetricsPort,
		RegistryName: DefaultRegistryName,
		Binders: BindersConfig{
			Process:   true,
			Runtime:   true,
			BuildInfo: true,
			Uptime:    true,
		},
		AddToGlobalRegistry: true,
	}
}

func Test_LoadConfig_EmptyDocument(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, {}} {
		// EXERCISE
		config, err := LoadConfig(data)

		// VERIFY
		assert.NilError(t, err)
		assert.DeepEqual(t, *config, defaultConfigForTest())
	}
}

func Test_LoadConfig_CompleteDocument(t *testing.T) {
	t.Parallel()

	// SETUP
	configData := dedent.Dedent(`
		metricsPort: 9999
		registryName: app
		commonTags:
		    env: prod
		    region: eu-1
		namePrefix: app_
		binders:
		    process: true
		    runtime: false
		    buildInfo: false
		    uptime: true
		addToGlobalRegistry: false
		`)

	// EXERCISE
	config, err := LoadConfig([]byte(configData))

	// VERIFY
	assert.NilError(t, err)

	expected := deepcopy.Copy(defaultConfigForTest()).(Config)
	expected.MetricsPort = 9999
	expected.RegistryName = "app"
	expected.CommonTags = map[string]string{
		"env":    "prod",
		"region": "eu-1",
	}
	expected.NamePrefix = "app_"
	expected.Binders.Runtime = false
	expected.Binders.BuildInfo = false
	expected.AddToGlobalRegistry = false

	assert.DeepEqual(t, *config, expected)
}

func Test_LoadConfig_PartialDocumentKeepsDefaults(t *testing.T) {
	t.Parallel()

	// SETUP
	configData := dedent.Dedent(`
		commonTags:
		    env: prod
		`)

	// EXERCISE
	config, err := LoadConfig([]byte(configData))

	// VERIFY
	assert.NilError(t, err)

	expected := deepcopy.Copy(defaultConfigForTest()).(Config)
	expected.CommonTags = map[string]string{"env": "prod"}

	assert.DeepEqual(t, *config, expected)
}

func Test_LoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		configData string
	}{
		{
			name:       "malformed yaml",
			configData: "\t",
		},
		{
			name:       "zero port",
			configData: "metricsPort: 0",
		},
		{
			name:       "empty registry name",
			configData: `registryName: ""`,
		},
		{
			name: "invalid tag key",
			configData: dedent.Dedent(`
				commonTags:
				    "bad key": value
				`),
		},
		{
			name:       "invalid name prefix",
			configData: `namePrefix: "bad prefix"`,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// EXERCISE
			config, err := LoadConfig([]byte(tc.configData))

			// VERIFY
			assert.Assert(t, config == nil)
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func Test_Config_EnabledBinderNames(t *testing.T) {
	t.Parallel()

	// SETUP
	config := defaultConfigForTest()
	config.Binders.Runtime = false

	// EXERCISE
	names := config.enabledBinderNames()

	// VERIFY
	assert.DeepEqual(t, names, []string{"process", "buildInfo", "uptime"})
}

func Test_Config_Customizers(t *testing.T) {
	t.Parallel()

	// SETUP
	config := defaultConfigForTest()
	config.CommonTags = map[string]string{"env": "prod"}
	config.NamePrefix = "app_"

	// EXERCISE
	customizers := config.customizers()

	// VERIFY
	assert.Equal(t, len(customizers), 2)
}

func Test_Config_Customizers_Empty(t *testing.T) {
	t.Parallel()

	config := defaultConfigForTest()

	assert.Equal(t, len(config.customizers()), 0)
}
