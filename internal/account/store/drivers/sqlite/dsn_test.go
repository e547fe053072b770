package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithDefaultParams(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			"bare path",
			"roster.db",
			"roster.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite",
		},
		{
			"caller busy timeout wins",
			"roster.db?_pragma=busy_timeout(100)",
			"roster.db?_pragma=busy_timeout(100)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_time_format=sqlite",
		},
		{
			"caller foreign keys respected",
			"file:roster.db?_pragma=foreign_keys(0)&_time_format=sqlite",
			"file:roster.db?_pragma=foreign_keys(0)&_time_format=sqlite&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		},
		{
			"other params kept",
			"file:roster.db?cache=shared",
			"file:roster.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, withDefaultParams(tt.dsn))
		})
	}
}
