package iface

import "testing"

// TestLookupIPv4Loopback exercises Testable Property 10: the loopback
// interface resolves to 127.0.0.1 wherever this runs.
func TestLookupIPv4Loopback(t *testing.T) {
	ip, err := LookupIPv4("lo")
	if err != nil {
		t.Fatalf("LookupIPv4(lo): %v", err)
	}
	if ip != "127.0.0.1" {
		t.Errorf("LookupIPv4(lo) = %q, want 127.0.0.1", ip)
	}
}

func TestLookupIPv4AbsentInterface(t *testing.T) {
	if _, err := LookupIPv4("snf-does-not-exist0"); err == nil {
		t.Error("LookupIPv4 on an absent interface should error")
	}
}

func TestLookupIPv4RejectsLongName(t *testing.T) {
	long := "this-interface-name-is-far-too-long-for-ifr-name"
	if _, err := LookupIPv4(long); err == nil {
		t.Error("LookupIPv4 should reject an overlong interface name")
	}
}
