package pull

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Timeouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		callerTimeout time.Duration
		opts          []Option
		withHTTP      bool
		want          time.Duration
	}{
		{name: "default", want: DefaultTimeout},
		{name: "explicit", opts: []Option{WithTimeout(time.Second)}, want: time.Second},
		{name: "disabled", opts: []Option{WithTimeout(0)}, want: 0},
		{name: "caller client keeps its timeout", callerTimeout: 5 * time.Minute, withHTTP: true, want: 5 * time.Minute},
		{name: "caller client without timeout", withHTTP: true, want: 0},
		{
			name:          "explicit timeout on caller client",
			callerTimeout: 5 * time.Minute,
			withHTTP:      true,
			opts:          []Option{WithTimeout(time.Second)},
			want:          time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc := &http.Client{Timeout: tt.callerTimeout}
			opts := tt.opts
			if tt.withHTTP {
				opts = append([]Option{WithHTTPClient(hc)}, opts...)
			}

			c, err := NewClient("http://localhost:8080", opts...)
			require.NoError(t, err)

			assert.Equal(t, tt.want, c.http.GetClient().Timeout)
			// The caller's client is never modified
			assert.Equal(t, tt.callerTimeout, hc.Timeout)
			if tt.withHTTP {
				assert.NotSame(t, hc, c.http.GetClient())
			}
		})
	}
}
