package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movielog/internal/config"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, mutate ...func(*config.Config)) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LibraryDir = filepath.Join(base, "movies")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.TMDB.APIKey = "test"
	cfgVal.Import.DelayMS = 0
	for _, fn := range mutate {
		fn(&cfgVal)
	}

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, &cfgVal)
	if err := os.MkdirAll(cfgVal.Paths.LibraryDir, 0o755); err != nil {
		t.Fatalf("mkdir library: %v", err)
	}

	return &cliTestEnv{cfg: &cfgVal, configPath: configPath, baseDir: base}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
library_dir = %q
log_dir = %q

[tmdb]
api_key = %q
base_url = %q

[import]
delay_ms = %d

[browse]
page_size = %d
`,
		cfg.Paths.LibraryDir,
		cfg.Paths.LogDir,
		cfg.TMDB.APIKey,
		cfg.TMDB.BaseURL,
		cfg.Import.DelayMS,
		cfg.Browse.PageSize,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, env, "", args...)
}

func runCLIWithInput(t *testing.T, env *cliTestEnv, input string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

// newTMDBServer serves canned search, detail, and credits payloads for
// Parasite. Queries for "Unfindable" return zero results; everything else
// matches.
func newTMDBServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "Unfindable" {
			fmt.Fprint(w, `{"page":1,"results":[],"total_pages":0,"total_results":0}`)
			return
		}
		fmt.Fprint(w, `{"page":1,"results":[`+
			`{"id":496243,"title":"Parasite","overview":"Greed and class discrimination threaten the Kim family.","release_date":"2019-05-30"},`+
			`{"id":581528,"title":"Parasite Part Two","release_date":"2020-01-01"}`+
			`],"total_pages":1,"total_results":2}`)
	})
	mux.HandleFunc("/movie/496243", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":496243,"title":"Parasite",`+
			`"overview":"Greed and class discrimination threaten the Kim family.",`+
			`"release_date":"2019-05-30","runtime":132,`+
			`"genres":[{"id":53,"name":"Thriller"},{"id":18,"name":"Drama"}],`+
			`"original_language":"ko",`+
			`"spoken_languages":[{"english_name":"Korean","iso_639_1":"ko","name":"한국어/조선말"}],`+
			`"production_countries":[{"iso_3166_1":"KR","name":"South Korea"}],`+
			`"poster_path":"/poster.jpg"}`)
	})
	mux.HandleFunc("/movie/496243/credits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":496243,`+
			`"cast":[{"name":"Song Kang-ho","order":0},{"name":"Lee Sun-kyun","order":1}],`+
			`"crew":[{"name":"Bong Joon Ho","job":"Director","department":"Directing"}]}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestVersionCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "movielog dev")
}

func TestRootShowsHelp(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "Usage:")
	requireContains(t, out, "import")
	requireContains(t, out, "browse")
}
