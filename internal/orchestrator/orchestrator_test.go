package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/generator"
	"sitegen_server/internal/types"
)

// fakeRemote stands in for the completion service.
type fakeRemote struct {
	text string
	err  error
}

func (f *fakeRemote) CompleteSite(_ context.Context, _ types.Settings) (string, error) {
	return f.text, f.err
}

func testSettings() types.Settings {
	s := types.DefaultSettings()
	s.Title = "Portfolio"
	s.Pages = []string{"Home", "Blog"}
	return s
}

func TestGenerateTemplateOnly(t *testing.T) {
	orch := New(nil, false)

	result, err := orch.Generate(context.Background(), testSettings(), false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUseTemplate, result.Outcome)
	assert.Empty(t, result.Notice)
	assert.Equal(t, generator.Generate(testSettings()), result.Files)
}

func TestGenerateRemoteWithoutCredentialDowngrades(t *testing.T) {
	orch := New(nil, false)

	result, err := orch.Generate(context.Background(), testSettings(), true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUseTemplate, result.Outcome)
	assert.NotEmpty(t, result.Notice)
	assert.Equal(t, generator.Generate(testSettings()), result.Files)
}

func TestGenerateRemoteUnavailableDowngrades(t *testing.T) {
	// Credential present but no client constructed.
	orch := New(nil, true)

	result, err := orch.Generate(context.Background(), testSettings(), true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUseTemplate, result.Outcome)
	assert.NotEmpty(t, result.Notice)
}

func TestGenerateRemoteSuccess(t *testing.T) {
	remote := &fakeRemote{text: "--- index.html ---\n<html><body>hi</body></html>\n--- end ---\n"}
	orch := New(remote, true)

	result, err := orch.Generate(context.Background(), testSettings(), true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUseRemote, result.Outcome)
	assert.Empty(t, result.Notice)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "<html><body>hi</body></html>", result.Files["index.html"])
}

func TestGenerateRemoteErrorFallsBack(t *testing.T) {
	remote := &fakeRemote{err: errors.New("rate limit exceeded")}
	orch := New(remote, true)

	result, err := orch.Generate(context.Background(), testSettings(), true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFallbackAfterRemoteFailure, result.Outcome)
	assert.NotEmpty(t, result.Notice)

	// The fallback is indistinguishable from the credential-absent path.
	direct, err := New(nil, false).Generate(context.Background(), testSettings(), true)
	require.NoError(t, err)
	assert.Equal(t, direct.Files, result.Files)
}

func TestGenerateUnparseableRemoteOutputFallsBack(t *testing.T) {
	remote := &fakeRemote{text: "I'm sorry, I can't help with that."}
	orch := New(remote, true)

	result, err := orch.Generate(context.Background(), testSettings(), true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFallbackAfterRemoteFailure, result.Outcome)
	assert.Equal(t, generator.Generate(testSettings()), result.Files)
}

func TestGenerateNeverMixesRemoteAndTemplate(t *testing.T) {
	// A partial remote answer that parses to files is used as-is, not
	// merged with template output.
	remote := &fakeRemote{text: "--- only.css ---\nbody {}\n--- end ---\n"}
	orch := New(remote, true)

	result, err := orch.Generate(context.Background(), testSettings(), true)
	require.NoError(t, err)
	assert.Equal(t, types.FileMapping{"only.css": "body {}"}, result.Files)
}
