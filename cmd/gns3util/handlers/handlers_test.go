package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/concave-dev/gns3util/cmd/gns3util/client"
	"github.com/concave-dev/gns3util/cmd/gns3util/config"
	"github.com/concave-dev/gns3util/cmd/gns3util/registry"
	"github.com/concave-dev/gns3util/cmd/gns3util/selector"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

// recordingServer answers with handler and records request URIs relative to
// the API root.
type recordingServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []string
}

func newRecordingServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, endpoint string)) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := strings.TrimPrefix(r.URL.EscapedPath(), client.APIPrefix+"/")
		if r.URL.RawQuery != "" {
			endpoint += "?" + r.URL.RawQuery
		}
		rs.mu.Lock()
		rs.requests = append(rs.requests, endpoint)
		rs.mu.Unlock()
		handler(w, r, endpoint)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) seen() []string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]string(nil), rs.requests...)
}

// echo answers every request with a JSON string naming the endpoint.
func echo(w http.ResponseWriter, _ *http.Request, endpoint string) {
	body, _ := json.Marshal("Dummy response for " + endpoint)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// useServer points NewFacade at url for the duration of the test. Streamed
// events go to streamOut.
func useServer(t *testing.T, url string, streamOut *bytes.Buffer) {
	t.Helper()
	original := NewFacade
	NewFacade = func() (client.Facade, error) {
		return client.NewAPIClient(client.Options{Server: url, Timeout: 5 * time.Second, Out: streamOut}), nil
	}
	t.Cleanup(func() { NewFacade = original })
}

func useSelector(t *testing.T, sel selector.Selector) {
	t.Helper()
	original := NewSelector
	NewSelector = func(string) (selector.Selector, error) { return sel, nil }
	t.Cleanup(func() { NewSelector = original })
}

func newCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func init() {
	config.Global.LogLevel = "ERROR"
}

func TestDispatchEveryDescriptor(t *testing.T) {
	rs := newRecordingServer(t, echo)
	useServer(t, rs.URL, &bytes.Buffer{})

	values := []string{"parent-1", "target-2"}

	for _, desc := range registry.All() {
		t.Run(desc.Name, func(t *testing.T) {
			args := values[:desc.Arity]
			before := len(rs.seen())

			cmd, out := newCommand()
			if err := Dispatch(desc)(cmd, args); err != nil {
				t.Fatalf("dispatch: %v", err)
			}

			seen := rs.seen()[before:]
			if len(seen) != 1 {
				t.Fatalf("expected exactly one request, got %v", seen)
			}
			endpoint := seen[0]

			// Arguments appear in the request in declared order
			last := -1
			for _, arg := range args {
				pos := strings.Index(endpoint, arg)
				if pos < 0 || pos < last {
					t.Errorf("endpoint %q does not carry %v in order", endpoint, args)
				}
				last = pos
			}

			// Rendering the echoed marker is the identity on the payload
			expected := fmt.Sprintf("%q\n", "Dummy response for "+endpoint)
			if out.String() != expected {
				t.Errorf("output = %q, want %q", out.String(), expected)
			}
		})
	}
}

func TestDispatchRejectsEmptyArgument(t *testing.T) {
	rs := newRecordingServer(t, echo)
	useServer(t, rs.URL, &bytes.Buffer{})

	desc, _ := registry.Lookup("node")
	cmd, out := newCommand()

	err := Dispatch(desc)(cmd, []string{"p1", ""})
	if err == nil || err.Error() != "node-id cannot be empty" {
		t.Fatalf("error = %v, want node-id cannot be empty", err)
	}
	if len(rs.seen()) != 0 || out.Len() != 0 {
		t.Errorf("requests %v, output %q; want none", rs.seen(), out.String())
	}
}

func TestDispatchFailurePrintsNothing(t *testing.T) {
	rs := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	})
	useServer(t, rs.URL, &bytes.Buffer{})

	desc, _ := registry.Lookup("projects")
	cmd, out := newCommand()

	if err := Dispatch(desc)(cmd, nil); err != nil {
		t.Fatalf("dispatch returned %v; failed calls are reported by the client", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestDispatchRawSymbolBody(t *testing.T) {
	const svg = `<svg width="10">a & b</svg>`
	rs := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte(svg))
	})
	useServer(t, rs.URL, &bytes.Buffer{})

	desc, _ := registry.Lookup("symbol")
	cmd, out := newCommand()
	if err := Dispatch(desc)(cmd, []string{"router.svg"}); err != nil {
		t.Fatal(err)
	}

	expected := `"<svg width=\"10\">a & b</svg>"` + "\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestDispatchFacadeError(t *testing.T) {
	original := NewFacade
	NewFacade = func() (client.Facade, error) { return nil, fmt.Errorf("bad key file") }
	t.Cleanup(func() { NewFacade = original })

	desc, _ := registry.Lookup("version")
	cmd, _ := newCommand()
	if err := Dispatch(desc)(cmd, nil); err == nil || err.Error() != "bad key file" {
		t.Errorf("error = %v", err)
	}
}

func TestDispatchCapturesDescriptor(t *testing.T) {
	rs := newRecordingServer(t, echo)
	useServer(t, rs.URL, &bytes.Buffer{})

	// Building every RunE first and running them afterwards must still hit
	// each command's own endpoint
	descs := registry.All()
	runs := make([]func(*cobra.Command, []string) error, len(descs))
	for i, desc := range descs {
		runs[i] = Dispatch(desc)
	}

	version, _ := registry.Lookup("version")
	pools, _ := registry.Lookup("pools")
	for i, desc := range descs {
		if desc.Name == version.Name || desc.Name == pools.Name {
			cmd, _ := newCommand()
			if err := runs[i](cmd, nil); err != nil {
				t.Fatal(err)
			}
		}
	}

	if diff := cmp.Diff([]string{"version", "pools"}, rs.seen()); diff != "" {
		t.Errorf("requests (-want +got):\n%s", diff)
	}
}

func TestHandleNotificationsEndsWithStream(t *testing.T) {
	rs := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.Write([]byte(`{"action": "ping"}` + "\n"))
	})
	var events bytes.Buffer
	useServer(t, rs.URL, &events)
	config.Stream.Timeout = 30

	cmd, out := newCommand()
	start := time.Now()
	if err := HandleNotifications(cmd, nil); err != nil {
		t.Fatal(err)
	}

	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("returned after %v, want return at stream end", elapsed)
	}
	if out.Len() != 0 {
		t.Errorf("command printed %q itself", out.String())
	}
	if !strings.Contains(events.String(), "ping") {
		t.Errorf("streamed events = %q", events.String())
	}
	if diff := cmp.Diff([]string{"notifications"}, rs.seen()); diff != "" {
		t.Errorf("requests (-want +got):\n%s", diff)
	}
}

func TestHandleProjectNotificationsTimeout(t *testing.T) {
	rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request, _ string) {
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	})
	useServer(t, rs.URL, &bytes.Buffer{})
	config.Stream.Timeout = 1

	cmd, out := newCommand()
	start := time.Now()
	if err := HandleProjectNotifications(cmd, []string{"proj1"}); err != nil {
		t.Fatal(err)
	}

	elapsed := time.Since(start)
	if elapsed < 900*time.Millisecond || elapsed > 10*time.Second {
		t.Errorf("returned after %v, want about the 1s timeout", elapsed)
	}
	if out.Len() != 0 {
		t.Errorf("command printed %q itself", out.String())
	}
	if diff := cmp.Diff([]string{"projects/proj1/notifications"}, rs.seen()); diff != "" {
		t.Errorf("requests (-want +got):\n%s", diff)
	}
}

func TestHandleNotificationsRejectsTimeout(t *testing.T) {
	config.Stream.Timeout = 0
	defer func() { config.Stream.Timeout = config.DefaultStreamTimeout }()

	cmd, _ := newCommand()
	if err := HandleNotifications(cmd, nil); err == nil {
		t.Error("expected error for a zero timeout")
	}
}

// pickFirst selects the first candidate.
type pickFirst struct{}

func (pickFirst) Select(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[:1], nil
}

func directoryServer(w http.ResponseWriter, _ *http.Request, endpoint string) {
	w.Header().Set("Content-Type", "application/json")
	switch endpoint {
	case "access/users":
		w.Write([]byte(`[{"username": "alice", "user_id": "u1"}, {"username": "bob", "user_id": "u2"}]`))
	case "access/users/u1/groups":
		w.Write([]byte(`[{"name": "Administrators", "user_group_id": "g1"}]`))
	case "access/groups":
		w.Write([]byte(`[{"name": "Users", "user_group_id": "g2"}]`))
	case "access/groups/g2/members":
		w.Write([]byte(`[]`))
	default:
		http.NotFound(w, nil)
	}
}

func TestDrillDownHandlers(t *testing.T) {
	tests := []struct {
		name      string
		handler   func(*cobra.Command, []string) error
		expected  string
		requests  []string
		errString string
	}{
		{
			name:     "find-user-info",
			handler:  HandleFindUserInfo,
			expected: "---\nusername: alice\nuser_id: u1\n---\n",
			requests: []string{"access/users"},
		},
		{
			name:    "find-user-info-and-group-membership",
			handler: HandleFindUserGroups,
			expected: "---\nusername: alice\nuser_id: u1\n---\n" +
				"---\nname: Administrators\nuser_group_id: g1\n---\n",
			requests: []string{"access/users", "access/users/u1/groups"},
		},
		{
			name:     "find-group-info",
			handler:  HandleFindGroupInfo,
			expected: "---\nname: Users\nuser_group_id: g2\n---\n",
			requests: []string{"access/groups"},
		},
		{
			name:      "find-group-info-with-usernames",
			handler:   HandleFindGroupMembers,
			expected:  "---\nname: Users\nuser_group_id: g2\n---\n",
			requests:  []string{"access/groups", "access/groups/g2/members"},
			errString: "this group has no members",
		},
		{
			name:    "usernames-and-ids",
			handler: HandleUsernamesAndIDs,
			expected: "List of all users and their id:\n" +
				"Username: alice\nID: u1\n----------\n" +
				"Username: bob\nID: u2\n----------\n",
			requests: []string{"access/users"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRecordingServer(t, directoryServer)
			useServer(t, rs.URL, &bytes.Buffer{})
			useSelector(t, pickFirst{})

			cmd, out := newCommand()
			err := tt.handler(cmd, nil)

			if tt.errString != "" {
				if err == nil || err.Error() != tt.errString {
					t.Errorf("error = %v, want %q", err, tt.errString)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tt.expected, out.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.requests, rs.seen()); diff != "" {
				t.Errorf("requests (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUsernamesAndIDsFailure(t *testing.T) {
	rs := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusForbidden)
	})
	useServer(t, rs.URL, &bytes.Buffer{})

	cmd, out := newCommand()
	err := HandleUsernamesAndIDs(cmd, nil)
	if err == nil || err.Error() != "An error occurred getting all the data for the users" {
		t.Fatalf("error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("printed %q before aborting", out.String())
	}
}
