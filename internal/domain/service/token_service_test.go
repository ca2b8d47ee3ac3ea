package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    int64
		wantErr bool
	}{
		{name: "simple", subject: "7:alice", want: 7},
		{name: "username with colon", subject: "42:a:b:c", want: 42},
		{name: "no colon", subject: "7", wantErr: true},
		{name: "non-numeric id", subject: "abc:alice", wantErr: true},
		{name: "empty", subject: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSubject(tt.subject)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
