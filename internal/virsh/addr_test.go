package virsh

import "testing"

func TestParseAddresses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name: "single lease row",
			input: ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.122.5/24
`,
			want: []string{"192.168.122.5"},
		},
		{
			name:  "empty output",
			input: "",
			want:  nil,
		},
		{
			name: "header only",
			input: ` Name       MAC address          Protocol     Address
-------------------------------------------------------
`,
			want: nil,
		},
		{
			name: "ipv6 rows are skipped",
			input: ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet0      52:54:00:aa:bb:cc    ipv6         fe80::1/64
 vnet0      52:54:00:aa:bb:cc    ipv4         10.0.0.7/8
`,
			want: []string{"10.0.0.7"},
		},
		{
			name: "short rows are skipped",
			input: ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet0      ipv4
 vnet0      52:54:00:aa:bb:cc    ipv4         172.16.0.3/16
`,
			want: []string{"172.16.0.3"},
		},
		{
			name: "address without prefix length",
			input: ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.1.20
`,
			want: []string{"192.168.1.20"},
		},
		{
			name: "duplicate rows collapse",
			input: ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.122.5/24
 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.122.5/24
 vnet1      52:54:00:dd:ee:ff    ipv4         192.168.122.9/24
`,
			want: []string{"192.168.122.5", "192.168.122.9"},
		},
		{
			name: "multiple rows keep discovery order",
			input: ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet1      52:54:00:dd:ee:ff    ipv4         10.1.1.2/24
 vnet0      52:54:00:aa:bb:cc    ipv4         10.1.1.1/24
`,
			want: []string{"10.1.1.2", "10.1.1.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAddresses(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseAddresses() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseAddresses()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnionAddressesAcrossSources(t *testing.T) {
	// Simulates one resolver pass: lease, then arp, then agent. The
	// duplicate seen by arp stays at its first position and the agent's
	// extra address lands at the end.
	lease := ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.122.5/24
`
	arp := ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.122.5/24
 br0        52:54:00:11:22:33    ipv4         192.168.1.40/24
`
	agent := ` Name       MAC address          Protocol     Address
-------------------------------------------------------
 eth0       52:54:00:aa:bb:cc    ipv4         10.10.0.2/16
`

	var addrs []string
	for _, out := range []string{lease, arp, agent} {
		addrs = unionAddresses(addrs, out)
	}

	want := []string{"192.168.122.5", "192.168.1.40", "10.10.0.2"}
	if len(addrs) != len(want) {
		t.Fatalf("union = %v, want %v", addrs, want)
	}
	for i := range addrs {
		if addrs[i] != want[i] {
			t.Errorf("union[%d] = %q, want %q", i, addrs[i], want[i])
		}
	}
}
