package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		host   string
		wantID string
	}{
		{"www.linkedin.com", "linkedin"},
		{"boards.greenhouse.io", "greenhouse"},
		{"jobs.lever.co", "lever"},
		{"acme.wd1.myworkdayjobs.com", "workday"},
		{"indeed.com", "indeed"},
		{"example.com", ""},
		{"notlinkedin.company.example", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			ctx := Resolve(tt.host)
			assert.Equal(t, tt.wantID, ctx.ID)
			assert.Equal(t, tt.wantID != "", ctx.Known())
		})
	}
}
