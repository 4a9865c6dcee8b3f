package mojang

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestServer(t *testing.T, known map[string]Profile) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/profiles/minecraft" {
			http.NotFound(w, r)
			return
		}
		var names []string
		if err := json.NewDecoder(r.Body).Decode(&names); err != nil {
			t.Errorf("bad request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(names) > MAX_NAMES_PER_REQUEST {
			t.Errorf("request carried %d names", len(names))
		}
		out := []Profile{}
		for _, n := range names {
			if p, ok := known[n]; ok {
				out = append(out, p)
			}
		}
		json.NewEncoder(w).Encode(out)
	}))
}

func TestGetProfileByUsername(t *testing.T) {
	srv := newTestServer(t, map[string]Profile{
		"Notch": {Id: "069a79f444e94726a5befca90e38aaf5", Name: "Notch"},
	})
	defer srv.Close()
	repo := NewHttpProfileRepository(srv.Client(), srv.URL)

	p, err := GetProfileByUsername(context.Background(), repo, "Notch")
	if err != nil {
		t.Fatalf("GetProfileByUsername: %v", err)
	}
	if diff := cmp.Diff(Profile{Id: "069a79f444e94726a5befca90e38aaf5", Name: "Notch"}, p); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}

	if _, err := GetProfileByUsername(context.Background(), repo, "nobody"); err != ERR_NO_SUCH_USER {
		t.Errorf("unknown user error = %v, want %v", err, ERR_NO_SUCH_USER)
	}
}

func TestGetProfilesByCriteriaBatches(t *testing.T) {
	known := map[string]Profile{}
	var criteria ProfileCriteria
	for i := 0; i < 25; i++ {
		name := string(rune('a'+i)) + "_player"
		known[name] = Profile{Id: name, Name: name}
		criteria = append(criteria, name)
	}
	srv := newTestServer(t, known)
	defer srv.Close()

	profiles, err := NewHttpProfileRepository(srv.Client(), srv.URL).GetProfilesByCriteria(context.Background(), criteria)
	if err != nil {
		t.Fatalf("GetProfilesByCriteria: %v", err)
	}
	if len(profiles) != 25 {
		t.Errorf("got %d profiles, want 25", len(profiles))
	}
}

func TestGetProfilesByCriteriaServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := GetProfileByUsername(context.Background(), NewHttpProfileRepository(srv.Client(), srv.URL), "Notch")
	if err == nil || err == ERR_NO_SUCH_USER {
		t.Errorf("error = %v, want a request failure", err)
	}
}
