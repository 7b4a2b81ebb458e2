package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestSend_PostsHTMLPayload(t *testing.T) {
	n := NewTelegramNotifier("TOKEN", "42", "")

	var got map[string]string
	n.Client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if !strings.Contains(req.URL.Path, "/botTOKEN/sendMessage") {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		body, _ := io.ReadAll(req.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"ok":true}`), nil
	})

	if err := n.Send("<b>hi</b>"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got["chat_id"] != "42" || got["text"] != "<b>hi</b>" || got["parse_mode"] != "HTML" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestSend_DisabledWithoutToken(t *testing.T) {
	n := NewTelegramNotifier("", "42", "")
	if n.Enabled() {
		t.Fatal("notifier without token should be disabled")
	}
	if err := n.Send("hi"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("want ErrDisabled, got %v", err)
	}
	if err := n.SendWithRetry(context.Background(), "hi", 3); !errors.Is(err, ErrDisabled) {
		t.Fatalf("want ErrDisabled from retry path, got %v", err)
	}
}

func TestSend_SurfacesAPIErrors(t *testing.T) {
	n := NewTelegramNotifier("TOKEN", "42", "")
	n.Client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"ok":false,"description":"chat not found"}`), nil
	})

	err := n.Send("hi")
	if err == nil || !strings.Contains(err.Error(), "status 400") {
		t.Fatalf("want status error, got %v", err)
	}
}

func TestSendWithRetry_RecoversAfterTransientFailure(t *testing.T) {
	n := NewTelegramNotifier("TOKEN", "42", "")

	var mu sync.Mutex
	attempts := 0
	n.Client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts == 1 {
			return jsonResponse(http.StatusBadGateway, "gateway error"), nil
		}
		return jsonResponse(http.StatusOK, `{"ok":true}`), nil
	})

	if err := n.SendWithRetry(context.Background(), "hi", 3); err != nil {
		t.Fatalf("SendWithRetry: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestSendWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	n := NewTelegramNotifier("TOKEN", "42", "")

	var mu sync.Mutex
	attempts := 0
	n.Client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		return jsonResponse(http.StatusBadGateway, "gateway error"), nil
	})

	if err := n.SendWithRetry(context.Background(), "hi", 1); err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	mu.Lock()
	defer mu.Unlock()
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestStartPolling_DispatchesCommandsAndReplies(t *testing.T) {
	n := NewTelegramNotifier("TOKEN", "42", "")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	polls := 0
	var offsets []string
	var replies []string
	var handled []string

	n.Client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case strings.Contains(req.URL.Path, "getUpdates"):
			polls++
			offsets = append(offsets, req.URL.Query().Get("offset"))
			if polls == 1 {
				return jsonResponse(http.StatusOK, `{"ok":true,"result":[{"update_id":7,"message":{"text":" scan "}}]}`), nil
			}
			cancel()
			return jsonResponse(http.StatusOK, `{"ok":true,"result":[]}`), nil
		case strings.Contains(req.URL.Path, "sendMessage"):
			body, _ := io.ReadAll(req.Body)
			var payload map[string]string
			_ = json.Unmarshal(body, &payload)
			replies = append(replies, payload["text"])
			return jsonResponse(http.StatusOK, `{"ok":true}`), nil
		default:
			return jsonResponse(http.StatusNotFound, "not found"), nil
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		n.StartPolling(ctx, func(cmd string) string {
			mu.Lock()
			defer mu.Unlock()
			handled = append(handled, cmd)
			return "scan queued"
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("polling did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 1 || handled[0] != "scan" {
		t.Errorf("handled = %v, want [scan]", handled)
	}
	if len(offsets) < 2 || offsets[0] != "0" || offsets[1] != "8" {
		t.Errorf("offsets = %v, want [0 8 ...]", offsets)
	}
	if len(replies) != 1 || replies[0] != "scan queued" {
		t.Errorf("replies = %v, want [scan queued]", replies)
	}
}

func TestStartPolling_DisabledReturnsImmediately(t *testing.T) {
	n := NewTelegramNotifier("", "", "")

	done := make(chan struct{})
	go func() {
		defer close(done)
		n.StartPolling(context.Background(), func(string) string { return "" })
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled polling should return immediately")
	}
}
