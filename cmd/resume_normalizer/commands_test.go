package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command in-process and returns stdout, stderr and the error
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"extract", "parse-job", "map", "validate", "validate-output", "contract"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().ShorthandLookup("v"))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtractCommand(t *testing.T) {
	ok := writeFile(t, "resume.txt", "Jane   Doe\n\n\n\nEngineer")
	bad := writeFile(t, "photo.png", "not really a png")

	stdout, _, err := executeCommand(t, "extract", ok)
	require.NoError(t, err)

	var results []extractResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 1)
	assert.Equal(t, ok, results[0].File)
	assert.NotEmpty(t, results[0].DocumentID)
	require.NotNil(t, results[0].Result)
	assert.Equal(t, "Jane Doe\n\nEngineer", results[0].Result.Text)
	assert.Equal(t, 3, results[0].Result.Metadata.WordCount)

	stdout, _, err = executeCommand(t, "extract", ok, bad, "--mime", "text/plain")
	require.NoError(t, err)
	var forced []extractResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &forced))
	assert.Len(t, forced, 2)

	stdout, _, err = executeCommand(t, "extract", ok, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 documents failed")
	var mixed []extractResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &mixed))
	require.Len(t, mixed, 2)
	assert.Empty(t, mixed[0].Error)
	assert.Contains(t, mixed[1].Error, "unsupported format")
	assert.Nil(t, mixed[1].Result)
}

func TestExtractCommand_Raw(t *testing.T) {
	path := writeFile(t, "resume.txt", "Jane\tDoe ")

	stdout, _, err := executeCommand(t, "extract", "--raw", path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n", stdout)
}

func TestExtractCommand_Errors(t *testing.T) {
	_, _, err := executeCommand(t, "extract")
	require.Error(t, err)

	_, _, err = executeCommand(t, "extract", filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}

func TestExtractCommand_Verbose(t *testing.T) {
	path := writeFile(t, "resume.txt", "Jane Doe")

	_, stderr, err := executeCommand(t, "extract", "-v", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "EXTRACTED TEXT: resume.txt")
}

func TestParseJobCommand(t *testing.T) {
	path := writeFile(t, "job.txt", "Backend Engineer at Acme\n\nRequirements:\n- Go\n- PostgreSQL\n")

	stdout, _, err := executeCommand(t, "parse-job", "--in", path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &record))
	assert.Equal(t, "Backend Engineer", record["title"])
	assert.Equal(t, "Acme", record["company"])
	assert.Equal(t, []any{"Go", "PostgreSQL"}, record["requirements"])

	_, _, err = executeCommand(t, "parse-job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestMapCommand(t *testing.T) {
	path := writeFile(t, "resume.json", `{
		"basics": {"name": "Jane Doe", "email": "jane@x.com"},
		"work": [{"name": "Acme", "position": "Engineer", "highlights": ["Shipped X"]}],
		"education": [{"institution": "MIT"}]
	}`)

	stdout, _, err := executeCommand(t, "map", "--in", path)
	require.NoError(t, err)

	var universal map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &universal))
	assert.Equal(t, "Jane Doe", universal["personalInfo"].(map[string]any)["fullName"])
	assert.NotNil(t, universal["projects"])

	stdout, _, err = executeCommand(t, "map", "--in", path, "--canonical", "--validate")
	require.NoError(t, err)
	var canonical map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &canonical))
	assert.Equal(t, "Jane Doe", canonical["header"].(map[string]any)["fullName"])
}

func TestMapCommand_Errors(t *testing.T) {
	array := writeFile(t, "array.json", `[1, 2]`)
	_, _, err := executeCommand(t, "map", "--in", array)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")

	empty := writeFile(t, "empty.json", `{}`)
	_, stderr, err := executeCommand(t, "map", "--in", empty, "--validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not validate")
	assert.Contains(t, stderr, "header.fullName")
}

func TestValidateCommand(t *testing.T) {
	valid := writeFile(t, "valid.json", `{
		"metadata": {"language": "en", "preservedOrder": true},
		"header": {"fullName": "Jane Doe"},
		"experience": [{"company": "Acme", "title": "Engineer", "startDate": "2020-01", "endDate": "Present", "bullets": ["Shipped X"]}],
		"education": []
	}`)

	stdout, _, err := executeCommand(t, "validate", "--in", valid)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"valid": true`)

	invalid := writeFile(t, "invalid.json", `{
		"metadata": {"language": "en", "preservedOrder": true},
		"header": {"fullName": ""},
		"experience": [],
		"education": []
	}`)

	stdout, _, err = executeCommand(t, "validate", "--in", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not validate")
	assert.Contains(t, stdout, `"field": "header.fullName"`)
	assert.Contains(t, stdout, `"field": "experience"`)
}

func TestValidateOutputCommand(t *testing.T) {
	good := writeFile(t, "good.txt", "```json\n{\"options\": [{\"text\": \"Improved bullet\"}]}\n```")
	stdout, _, err := executeCommand(t, "validate-output", "--in", good)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"text": "Improved bullet"`)

	bad := writeFile(t, "bad.txt", `{"options": []}`)
	stdout, _, err = executeCommand(t, "validate-output", "--in", bad)
	require.Error(t, err)
	assert.Contains(t, stdout, `"valid": false`)
	assert.NotContains(t, stdout, `"response"`)
}

func TestContractCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "contract", "--kind", "generation")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"options": [{"label": "string", "text": "string"}] (required)`)
	assert.NotContains(t, stdout, "Input text:")

	input := writeFile(t, "cv.txt", "Jane Doe\fEngineer")
	stdout, _, err = executeCommand(t, "contract", "--in", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"header"`)
	assert.Contains(t, stdout, "Input text:\n\"\"\"\nJane Doe Engineer\n\"\"\"")

	_, _, err = executeCommand(t, "contract", "--kind", "cover-letter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown contract kind")
}

func TestRootCommand_BadConfig(t *testing.T) {
	_, _, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "contract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
