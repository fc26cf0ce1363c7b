package html2pdf

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/html2pdf/internal/process"
)

// devToolsListeningRe matches Chrome's own startup announcement, e.g.
// "DevTools listening on ws://127.0.0.1:9222/devtools/browser/<uuid>".
var devToolsListeningRe = regexp.MustCompile(`DevTools listening on (ws://\S+)`)

const (
	maxStartupLogLines = 100
	portConflictMarker = "bind() returned an error"
)

// chromeArgs are the flags passed to every launched browser. Order is
// not significant to Chrome but is kept stable so launch commands are
// reproducible in logs.
var chromeArgs = []string{
	"--headless",
	"--disable-gpu",
	"--no-sandbox",
	"--disable-web-security",
	"--allow-file-access-from-files",
	"--disable-extensions",
	"--disable-popup-blocking",
	"--disable-translate",
}

// launchResult is what the startup-log scanner reports back: either the
// browser-level websocket URL it announced, or the reason launch did not
// succeed.
type launchResult struct {
	wsURL string
	err   error
}

// launchedBrowser is a running Chrome process bound to a debugging port,
// with a discovered page endpoint ready to drive over CDP.
type launchedBrowser struct {
	cmd         *exec.Cmd
	port        int
	pageURL     string
	pipeR       *os.File
	done        chan struct{}
	userDataDir string
}

// launchBrowser spawns a Chrome process on a debugging port derived from
// basePort (probing up to portProbeRange ports above it if basePort is
// already bound), confirms the process came up by scraping its merged
// stdout/stderr for Chrome's "DevTools listening on" line, waits out a
// short grace period, and discovers a page target to drive over CDP via
// /json/list (falling back to /json/new).
func launchBrowser(ctx context.Context, chromePath string, basePort int, logger Logger) (*launchedBrowser, error) {
	port, err := allocatePort(basePort)
	if err != nil {
		return nil, err
	}

	userDataDir, err := os.MkdirTemp("", "html2pdf-chrome-*")
	if err != nil {
		return nil, fmt.Errorf("html2pdf: creating user data dir: %w", err)
	}

	args := append(append([]string{}, chromeArgs...),
		fmt.Sprintf("--remote-debugging-port=%d", port),
		fmt.Sprintf("--user-data-dir=%s", userDataDir),
		"about:blank",
	)

	// exec.Command, not CommandContext: ctx bounds only the launch below,
	// while the browser itself lives until close().
	cmd := exec.Command(chromePath, args...)
	setProcessGroup(cmd)

	pipeR, pipeW, err := os.Pipe()
	if err != nil {
		_ = os.RemoveAll(userDataDir)
		return nil, fmt.Errorf("html2pdf: creating launch log pipe: %w", err)
	}
	cmd.Stdout = pipeW
	cmd.Stderr = pipeW

	if err := cmd.Start(); err != nil {
		_ = pipeR.Close()
		_ = pipeW.Close()
		_ = os.RemoveAll(userDataDir)
		return nil, fmt.Errorf("%w: starting %s: %v", ErrLaunchUnconfirmed, chromePath, err)
	}
	_ = pipeW.Close() // child holds its own copy of the fd

	logger.Debugf("launching chrome pid=%d port=%d user-data-dir=%s", cmd.Process.Pid, port, userDataDir)

	results := make(chan launchResult, 1)
	go scanStartupLog(pipeR, results)

	var res launchResult
	select {
	case res = <-results:
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		_ = pipeR.Close()
		_ = os.RemoveAll(userDataDir)
		return nil, ctx.Err()
	}

	if res.err != nil {
		_ = cmd.Process.Kill()
		_ = pipeR.Close()
		_ = os.RemoveAll(userDataDir)
		return nil, res.err
	}

	logger.Debugf("chrome pid=%d confirmed: %s", cmd.Process.Pid, res.wsURL)

	time.Sleep(DefaultLaunchGrace)

	pageURL, err := discoverPageEndpoint(port)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = pipeR.Close()
		_ = os.RemoveAll(userDataDir)
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	return &launchedBrowser{cmd: cmd, port: port, pageURL: pageURL, pipeR: pipeR, done: done, userDataDir: userDataDir}, nil
}

// allocatePort tries basePort, then basePort+1 through
// basePort+portProbeRange, binding and immediately releasing each
// candidate to find one free.
func allocatePort(basePort int) (int, error) {
	for port := basePort; port <= basePort+portProbeRange; port++ {
		if probePort(port) {
			return port, nil
		}
	}
	return 0, ErrPortUnavailable
}

func probePort(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	_ = l.Close()
	return true
}

// scanStartupLog reads lines from the browser's merged stdout/stderr,
// reporting the first of: a DevTools announcement, a port-conflict
// marker, or exhaustion of maxStartupLogLines without either. After
// reporting, it keeps draining r until EOF so the browser process never
// blocks writing to a full pipe.
func scanStartupLog(r io.Reader, results chan<- launchResult) {
	scanner := bufio.NewScanner(r)
	lines := 0
	sent := false
	for scanner.Scan() {
		lines++
		line := scanner.Text()
		if sent {
			continue
		}
		switch {
		case devToolsListeningRe.MatchString(line):
			results <- launchResult{wsURL: devToolsListeningRe.FindStringSubmatch(line)[1]}
			sent = true
		case strings.Contains(line, portConflictMarker):
			results <- launchResult{err: ErrPortConflict}
			sent = true
		case lines >= maxStartupLogLines:
			results <- launchResult{err: ErrLaunchUnconfirmed}
			sent = true
		}
	}
	if !sent {
		results <- launchResult{err: ErrLaunchUnconfirmed}
	}
}

// devtoolsTarget is the shape of one entry from /json/list, and also of
// the single object /json/new returns.
type devtoolsTarget struct {
	Type                 string `json:"type"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// discoverPageEndpoint asks the browser's HTTP debugging endpoint for a
// page target to attach to, preferring the existing about:blank page
// from /json/list and falling back to creating a new one via /json/new.
func discoverPageEndpoint(port int) (string, error) {
	base := fmt.Sprintf("http://127.0.0.1:%d", port)

	if url, err := fetchExistingPage(base + "/json/list"); err == nil {
		return url, nil
	}
	if url, err := fetchNewPage(base + "/json/new"); err == nil {
		return url, nil
	}
	return "", fmt.Errorf("%w: no page endpoint discoverable on port %d", ErrConnectionError, port)
}

func httpGetJSON(url string) ([]byte, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url) //nolint:noctx -- discovery calls are bounded by the client timeout above
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

func fetchExistingPage(url string) (string, error) {
	body, err := httpGetJSON(url)
	if err != nil {
		return "", err
	}
	var targets []devtoolsTarget
	if err := json.Unmarshal(bytes.TrimSpace(body), &targets); err != nil {
		return "", err
	}
	for _, t := range targets {
		if t.Type == "page" && t.WebSocketDebuggerURL != "" {
			return t.WebSocketDebuggerURL, nil
		}
	}
	return "", fmt.Errorf("no page target in %s", url)
}

func fetchNewPage(url string) (string, error) {
	body, err := httpGetJSON(url)
	if err != nil {
		return "", err
	}
	var target devtoolsTarget
	if err := json.Unmarshal(bytes.TrimSpace(body), &target); err != nil {
		return "", err
	}
	if target.WebSocketDebuggerURL == "" {
		return "", fmt.Errorf("no websocket url in %s", url)
	}
	return target.WebSocketDebuggerURL, nil
}

// close terminates the browser process, trying a graceful interrupt
// before falling back to a forced process-group kill, bounded by
// DefaultCloseTimeout.
func (b *launchedBrowser) close() error {
	defer func() { _ = b.pipeR.Close() }()
	defer func() { _ = os.RemoveAll(b.userDataDir) }()

	if b.cmd.Process == nil {
		return nil
	}

	_ = b.cmd.Process.Signal(os.Interrupt)

	select {
	case <-b.done:
		return nil
	case <-time.After(DefaultCloseTimeout):
	}

	process.KillProcessGroup(b.cmd.Process.Pid)

	select {
	case <-b.done:
	case <-time.After(1 * time.Second):
	}
	return nil
}
