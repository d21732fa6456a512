package domain_test

import (
	"errors"
	"testing"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection_NoMarkers(t *testing.T) {
	script := "import os\n\nprint(os.getcwd())\n"

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)

	assert.False(t, section.Narrowed)
	assert.Equal(t, "import os\n\nprint(os.getcwd())", section.Body)
	assert.True(t, section.Overrides.Empty())
}

func TestExtractSection_SingleSection(t *testing.T) {
	script := `import pandas as pd

# nb.start

df = pd.DataFrame()
print(df.shape)

# nb.end

print("after")
`

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)

	assert.True(t, section.Narrowed)
	assert.Equal(t, "df = pd.DataFrame()\nprint(df.shape)", section.Body)
	assert.True(t, section.Overrides.Empty())
}

func TestExtractSection_MarkerWhitespaceVariants(t *testing.T) {
	script := "before\n  #  nb.start  \nbody\n\t# nb.end\nafter\n"

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)

	assert.True(t, section.Narrowed)
	assert.Equal(t, "body", section.Body)
}

func TestExtractSection_Overrides(t *testing.T) {
	script := `# nb.start
# ipython_path = "/opt/venv/bin/ipython"
# timeout = 30
print("x")
# nb.end
`

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)

	assert.True(t, section.Narrowed)
	assert.Equal(t, `print("x")`, section.Body)
	assert.Equal(t, "/opt/venv/bin/ipython", section.Overrides.IPythonPath)
	assert.Equal(t, "30", section.Overrides.Values["timeout"])
}

func TestExtractSection_UnquotedOverrideValue(t *testing.T) {
	script := "# nb.start\n# ipython_path = /usr/bin/ipython\nprint(1)\n# nb.end\n"

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)

	assert.Equal(t, "/usr/bin/ipython", section.Overrides.IPythonPath)
}

func TestExtractSection_DirectiveAfterBodyIsBody(t *testing.T) {
	// Only the comment lines immediately following the start marker form the
	// directive header. A "# key = value" comment later in the section is an
	// ordinary comment and stays in the body.
	script := "# nb.start\nprint(1)\n# ipython_path = /usr/bin/ipython\n# nb.end\n"

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)

	assert.Empty(t, section.Overrides.IPythonPath)
	assert.Equal(t, "print(1)\n# ipython_path = /usr/bin/ipython", section.Body)
}

func TestExtractSection_UnclosedSectionRunsToEOF(t *testing.T) {
	script := "before\n# nb.start\nprint(1)\nprint(2)\n"

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)

	assert.True(t, section.Narrowed)
	assert.Equal(t, "print(1)\nprint(2)", section.Body)
}

func TestExtractSection_MarkerErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{
			name:   "end before start",
			script: "print(1)\n# nb.end\n",
		},
		{
			name:   "nested start markers",
			script: "# nb.start\nprint(1)\n# nb.start\n# nb.end\n",
		},
		{
			name:   "second section",
			script: "# nb.start\nprint(1)\n# nb.end\n# nb.start\nprint(2)\n# nb.end\n",
		},
		{
			name:   "duplicate end markers",
			script: "# nb.start\nprint(1)\n# nb.end\n# nb.end\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ExtractSection(tt.script)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMultipleSections))
		})
	}
}

func TestExtractSection_Golden(t *testing.T) {
	script := `#!/usr/bin/env python
# coding: utf-8

# In[1]:

import pandas as pd
import helpers

# In[2]:

# nb.start
# ipython_path = "/opt/venv/bin/ipython"

data = helpers.load()
model = helpers.train(data)
print(model.score())

# nb.end

# In[3]:

helpers.plot(model)
`

	section, err := domain.ExtractSection(script)
	require.NoError(t, err)
	require.True(t, section.Narrowed)

	g := goldie.New(t)
	g.Assert(t, "narrowed_body", []byte(section.Body+"\n"))
}
