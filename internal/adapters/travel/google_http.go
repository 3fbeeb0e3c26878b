package travel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

var (
	// ErrTimeout marks a lookup that exceeded the client timeout.
	ErrTimeout = errors.New("timeout")
	// ErrNetwork marks a transport failure other than a timeout.
	ErrNetwork = errors.New("network error")
)

// ProviderStatusError carries a failure status reported by the provider,
// such as REQUEST_DENIED or NOT_FOUND.
type ProviderStatusError struct {
	Status  string
	Message string
}

func (e *ProviderStatusError) Error() string {
	if e.Message == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (g *GoogleMatrixSource) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do issues a single request. Transport failures are mapped onto
// ErrTimeout or ErrNetwork; HTTP error statuses become httpStatusError.
func (g *GoogleMatrixSource) do(req *http.Request) (*http.Response, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// FailureReason reduces a lookup error to the short string recorded on
// fallback estimates.
func FailureReason(err error) string {
	var pe *ProviderStatusError
	var he *httpStatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return "network error"
	case errors.As(err, &pe):
		return pe.Status
	case errors.As(err, &he):
		return fmt.Sprintf("HTTP_%d", he.Code)
	default:
		return err.Error()
	}
}
