package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /accounts", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"entries": [{"id": 1234}], "total_size": 1}`)
	})
	mux.HandleFunc("GET /accounts/1234/lists", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"entries": [{"id": 42, "name": "Newsletter"}], "total_size": 1}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("AWEBER_API_URL", srv.URL)
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAccountsAddAndList(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "accounts", "add", "--name", "Main", "--token", "tok")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered AWeber account 1234 as ")

	out, err = run(t, "accounts", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "1234")
	assert.Contains(t, lines[1], "Main")
}

func TestAccountsDelete(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "accounts", "add", "--token", "tok", "--account-id", "1234")
	require.NoError(t, err)
	multiID := strings.TrimSpace(out[strings.LastIndex(out, " ")+1:])

	out, err = run(t, "accounts", "delete", multiID)
	require.NoError(t, err)
	assert.Equal(t, "Deleted AWeber account "+multiID+"\n", out)

	out, err = run(t, "accounts", "list")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)

	_, err = run(t, "accounts", "delete", multiID)
	assert.Error(t, err)
}

func TestAccountsAddRequiresToken(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "accounts", "add", "--name", "Main")
	assert.Error(t, err)
}

func TestListsCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "accounts", "add", "--token", "tok", "--account-id", "1234")
	require.NoError(t, err)
	multiID := strings.TrimSpace(out[strings.LastIndex(out, " ")+1:])

	out, err = run(t, "lists", multiID)
	require.NoError(t, err)
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Newsletter")

	out, err = run(t, "lists", multiID, "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": "42", "name": "Newsletter"}]`, out)
}

func TestListsCommandUnknownAccountPrintsEmptyCatalog(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "lists", "missing", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "form-integrations version dev (built unknown)\n", out)
}
