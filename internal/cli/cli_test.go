package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckValid(t *testing.T) {
	stdout, _, err := execute(t, "check", "demo/example/**")
	require.NoError(t, err)
	assert.Equal(t, "ok demo/example/**\n", stdout)
}

func TestCheckInvalid(t *testing.T) {
	stdout, _, err := execute(t, "check", "a//b")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "invalid [EMPTY_CHUNK]")
}

func TestCheckNFCAdvisory(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) is the NFD spelling of é.
	_, stderr, err := execute(t, "check", "café")
	require.NoError(t, err)
	assert.Contains(t, stderr, "not NFC-normalized")
}

func TestCanonText(t *testing.T) {
	stdout, _, err := execute(t, "canon", "hello/**/*")
	require.NoError(t, err)
	assert.Equal(t, "hello/*/**\n", stdout)
}

func TestCanonUnfixable(t *testing.T) {
	_, _, err := execute(t, "canon", "a//b")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestRelationText(t *testing.T) {
	stdout, _, err := execute(t, "relation", "a/**", "a/b")
	require.NoError(t, err)
	assert.Equal(t, "Includes\n", stdout)
}

func TestRelationJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "relation", "a/*", "*/a")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   RelationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Intersects", resp.Data.Relation)
}

func TestStripText(t *testing.T) {
	stdout, _, err := execute(t, "strip", "demo/**/ex$*/*/xyz", "demo/example/test")
	require.NoError(t, err)
	assert.Equal(t, "xyz\n**/ex$*/*/xyz\n", stdout)
}

func TestStripJSONEmpty(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "strip", "demo/example/test/**", "not/a/prefix")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   StripResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Data.Residuals)
}

func TestInvalidFormatFlag(t *testing.T) {
	_, _, err := execute(t, "--format", "yaml", "check", "a")
	require.Error(t, err)
}
