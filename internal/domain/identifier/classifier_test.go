package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Kind
	}{
		{
			name: "canonical uuid",
			raw:  "79349310-287D-8166-52FC-0644E27378F7",
			want: KindUUID,
		},
		{
			name: "lowercase uuid",
			raw:  "79349310-287d-8166-52fc-0644e27378f7",
			want: KindUUID,
		},
		{
			name: "asset tag",
			raw:  "A004733",
			want: KindAssetTag,
		},
		{
			name: "device name with spaces",
			raw:  "Rod Christiansen",
			want: KindDeviceName,
		},
		{
			name: "fully qualified hostname",
			raw:  "desktop-abc123.corp.local",
			want: KindHostname,
		},
		{
			name: "hyphenated hostname",
			raw:  "build-runner-07",
			want: KindHostname,
		},
		{
			name: "serial number",
			raw:  "0F33V9G25083HJ",
			want: KindSerialNumber,
		},
		{
			name: "empty string defaults to serial number",
			raw:  "",
			want: KindSerialNumber,
		},
		{
			name: "malformed uuid falls through to serial number",
			raw:  "79349310287D816652FC0644E27378F7",
			want: KindSerialNumber,
		},
		{
			name: "hostname with trailing hyphen label is not a hostname",
			raw:  "bad-label-.corp",
			want: KindSerialNumber,
		},
		{
			name: "uuid beats device name ordering",
			raw:  "79349310-287D-8166-52FC-0644E27378F7",
			want: KindUUID,
		},
		{
			name: "single letter plus digits is asset tag not hostname",
			raw:  "B12",
			want: KindAssetTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestClassify_EveryInputClassifies(t *testing.T) {
	// The classifier is total: arbitrary junk still maps to some Kind.
	inputs := []string{"!!!", "   ", "a.b-", ".", "-", "名前"}
	for _, raw := range inputs {
		kind := Classify(raw)
		assert.NotEmpty(t, kind, "input %q", raw)
	}
}
