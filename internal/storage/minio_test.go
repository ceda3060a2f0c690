package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		wantHost string
		wantTLS  bool
		wantErr  bool
	}{
		{name: "host and port", raw: "minio:9000", wantHost: "minio:9000"},
		{name: "http scheme", raw: "http://minio:9000", wantHost: "minio:9000"},
		{name: "https scheme", raw: "https://storage.example.com", wantHost: "storage.example.com", wantTLS: true},
		{name: "trailing slash", raw: "http://minio:9000/", wantHost: "minio:9000"},
		{name: "whitespace", raw: "  minio:9000  ", wantHost: "minio:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "path not allowed", raw: "http://minio:9000/bucket", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			host, secure, err := NormalizeEndpoint(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantHost, host)
			require.Equal(t, tc.wantTLS, secure)
		})
	}
}
