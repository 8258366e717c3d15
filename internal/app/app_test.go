package app

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/internal/repository"
)

func writeTestData(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		repository.ConstituenciesFile: "Constituency,Leading Candidate,Leading Party,Trailing Candidate,Trailing Party,Margin,Status\n" +
			"Varanasi,Narendra Modi,Bharatiya Janata Party,Ajay Rai,Indian National Congress,\"152,513\",Declared\n",
		repository.CandidatesFile: "S.N,Candidate,Party,EVM Votes,Postal Votes,Total Votes,% of Votes,State,Constituency\n" +
			"1,Narendra Modi,Bharatiya Janata Party,610970,1339,612309,54.24,Uttar Pradesh,Varanasi\n",
		repository.DetailedFile: "State,PC No,PC Name,Sl no,Candidate,Party,EVM Votes,Postal Votes,Total Votes,Vote Share\n" +
			"Uttar Pradesh,77,Varanasi,1,Narendra Modi,Bharatiya Janata Party,610970,1339,612309,54.24\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func testStaticFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("<html>Electoscope</html>")},
	}
}

func TestNew_InitializesApp(t *testing.T) {
	log := logger.New()

	a, err := New(log, Config{Port: 8080, DataDir: writeTestData(t)}, testStaticFS())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if a.handlers == nil {
		t.Error("expected handlers to be initialized")
	}
	if a.datasets == nil {
		t.Error("expected dataset service to be initialized")
	}
}

func TestNew_RequiresDataSource(t *testing.T) {
	if _, err := New(logger.New(), Config{Port: 8080}, testStaticFS()); err == nil {
		t.Error("expected error when neither data dir nor sqlite path is set")
	}
}

func TestApp_ServesAfterLoad(t *testing.T) {
	a, err := New(logger.New(), Config{Port: 8080, DataDir: writeTestData(t)}, testStaticFS())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.LoadDataset(context.Background()); err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}

	ts := httptest.NewServer(a.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/overview")
	if err != nil {
		t.Fatalf("GET /api/overview failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestApp_Returns503BeforeLoad(t *testing.T) {
	a, err := New(logger.New(), Config{Port: 8080, DataDir: writeTestData(t)}, testStaticFS())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ts := httptest.NewServer(a.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/parties")
	if err != nil {
		t.Fatalf("GET /api/parties failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

// fakeInterface implements networkInterface for testing
type fakeInterface struct {
	flags net.Flags
	addrs []net.Addr
}

func (f fakeInterface) Flags() net.Flags           { return f.flags }
func (f fakeInterface) Addrs() ([]net.Addr, error) { return f.addrs, nil }

// fakeProvider implements networkProvider for testing
type fakeProvider struct {
	ifaces []networkInterface
}

func (f fakeProvider) Interfaces() ([]networkInterface, error) {
	return f.ifaces, nil
}

func TestGetPreferredIP(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []networkInterface
		want   string
	}{
		{
			name:   "no interfaces",
			ifaces: nil,
			want:   "localhost",
		},
		{
			name: "prefers private 192.168 range",
			ifaces: []networkInterface{
				fakeInterface{flags: net.FlagUp, addrs: []net.Addr{
					&net.IPNet{IP: net.ParseIP("8.8.4.4")},
					&net.IPNet{IP: net.ParseIP("192.168.1.50")},
				}},
			},
			want: "192.168.1.50",
		},
		{
			name: "prefers 10.x range",
			ifaces: []networkInterface{
				fakeInterface{flags: net.FlagUp, addrs: []net.Addr{
					&net.IPNet{IP: net.ParseIP("10.0.0.7")},
				}},
			},
			want: "10.0.0.7",
		},
		{
			name: "falls back to public address",
			ifaces: []networkInterface{
				fakeInterface{flags: net.FlagUp, addrs: []net.Addr{
					&net.IPNet{IP: net.ParseIP("8.8.4.4")},
				}},
			},
			want: "8.8.4.4",
		},
		{
			name: "skips down and loopback interfaces",
			ifaces: []networkInterface{
				fakeInterface{flags: 0, addrs: []net.Addr{
					&net.IPNet{IP: net.ParseIP("192.168.1.50")},
				}},
				fakeInterface{flags: net.FlagUp | net.FlagLoopback, addrs: []net.Addr{
					&net.IPNet{IP: net.ParseIP("127.0.0.1")},
				}},
			},
			want: "localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := getPreferredIP(fakeProvider{ifaces: tt.ifaces})
			if got != tt.want {
				t.Errorf("getPreferredIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsPrivate172(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		{"172.15.0.1", false},
		{"172.32.0.1", false},
		{"192.168.1.1", false},
	}

	for _, tt := range tests {
		if got := isPrivate172(net.ParseIP(tt.ip)); got != tt.want {
			t.Errorf("isPrivate172(%s) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}
