package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractRegion(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "plain token", in: "MH27_report.xlsx", want: "MH27", wantOK: true},
		{name: "lower case", in: "mh31_october.xlsx", want: "MH31", wantOK: true},
		{name: "token mid-name", in: "registrations-MH40-final.xlsx", want: "MH40", wantOK: true},
		{name: "first match wins", in: "MH27_vs_MH31.xlsx", want: "MH27", wantOK: true},
		{name: "full path", in: "/data/2025/MH49.xlsx", want: "MH49", wantOK: true},
		{name: "no token", in: "summary.xlsx", wantOK: false},
		{name: "no region token", in: "2024_october.xlsx", wantOK: false},
		{name: "one digit", in: "MH2.xlsx", wantOK: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractRegion(tc.in)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}
