package inventory

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// fakeCommander serves canned output, recording what was asked of it.
type fakeCommander struct {
	listOut     string
	listErr     error
	descriptors map[string]string
	dumpErr     map[string]error
	addrs       map[string][]string

	dumpCalls []string
	started   []string
	shutdowns []string
}

func (f *fakeCommander) List(ctx context.Context, all bool) (string, error) {
	return f.listOut, f.listErr
}

func (f *fakeCommander) DumpXML(ctx context.Context, name string) (string, error) {
	f.dumpCalls = append(f.dumpCalls, name)
	if err := f.dumpErr[name]; err != nil {
		return "", err
	}
	return f.descriptors[name], nil
}

func (f *fakeCommander) ResolveAddresses(ctx context.Context, name string) []string {
	return f.addrs[name]
}

func (f *fakeCommander) Start(ctx context.Context, name string) error {
	f.started = append(f.started, name)
	return nil
}

func (f *fakeCommander) Shutdown(ctx context.Context, name string) error {
	f.shutdowns = append(f.shutdowns, name)
	return nil
}

func (f *fakeCommander) ConsoleCommand(name string) *exec.Cmd {
	return exec.Command("true")
}

func (f *fakeCommander) SSHCommand(user, addr string) *exec.Cmd {
	return exec.Command("true")
}

const listFixture = ` Id   Name   State
--------------------------
 1    vm1    running
 -    vm2    shut off
`

func TestRefreshEnrichesFromDescriptors(t *testing.T) {
	fake := &fakeCommander{
		listOut: listFixture,
		descriptors: map[string]string{
			"vm1": `<domain><vcpu>2</vcpu><memory unit='KiB'>2097152</memory></domain>`,
			"vm2": `<domain><vcpu>4</vcpu><memory unit='GiB'>1</memory></domain>`,
		},
	}
	svc := NewService(fake, zap.NewNop())

	domains, err := svc.Refresh(context.Background(), true)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if len(domains) != 2 {
		t.Fatalf("Refresh() returned %d domains, want 2", len(domains))
	}
	if domains[0].VCPUs != "2" || domains[0].Memory != "2048 MiB" {
		t.Errorf("vm1 resources = %q vcpus, %q memory", domains[0].VCPUs, domains[0].Memory)
	}
	if domains[1].VCPUs != "4" || domains[1].Memory != "1024 MiB" {
		t.Errorf("vm2 resources = %q vcpus, %q memory", domains[1].VCPUs, domains[1].Memory)
	}

	// One descriptor fetch per row
	if len(fake.dumpCalls) != 2 {
		t.Errorf("DumpXML called %d times, want 2", len(fake.dumpCalls))
	}
}

func TestRefreshKeepsDefaultsWhenDescriptorFails(t *testing.T) {
	fake := &fakeCommander{
		listOut: listFixture,
		descriptors: map[string]string{
			"vm1": `<domain><vcpu>2</vcpu><memory unit='KiB'>1024</memory></domain>`,
		},
		dumpErr: map[string]error{
			"vm2": errors.New("domain not found"),
		},
	}
	svc := NewService(fake, zap.NewNop())

	domains, err := svc.Refresh(context.Background(), true)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if domains[0].VCPUs != "2" {
		t.Errorf("vm1 VCPUs = %q, want '2'", domains[0].VCPUs)
	}
	// The failing domain keeps its placeholders; the refresh still succeeds
	if domains[1].VCPUs != "N/A" || domains[1].Memory != "N/A" {
		t.Errorf("vm2 resources = %q vcpus, %q memory, want N/A defaults", domains[1].VCPUs, domains[1].Memory)
	}
}

func TestRefreshPropagatesListFailure(t *testing.T) {
	fake := &fakeCommander{listErr: errors.New("connection refused")}
	svc := NewService(fake, zap.NewNop())

	if _, err := svc.Refresh(context.Background(), false); err == nil {
		t.Fatal("Refresh() should fail when the list fails")
	}
	if len(fake.dumpCalls) != 0 {
		t.Error("no enrichment should happen after a failed list")
	}
}

func TestRefreshEmptyInventory(t *testing.T) {
	fake := &fakeCommander{listOut: " Id Name State\n----\n"}
	svc := NewService(fake, zap.NewNop())

	domains, err := svc.Refresh(context.Background(), false)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if len(domains) != 0 {
		t.Errorf("Refresh() = %v, want empty", domains)
	}
}

func TestDetailComposesAddressesAndSummary(t *testing.T) {
	fake := &fakeCommander{
		addrs: map[string][]string{
			"vm1": {"192.168.122.5", "10.0.0.7"},
		},
		descriptors: map[string]string{
			"vm1": `<domain>
  <devices>
    <emulator>/usr/bin/qemu-system-x86_64</emulator>
    <interface type='network'><source network='default'/></interface>
    <disk device='disk'><source file='/img/a.qcow2'/><target dev='vda'/></disk>
  </devices>
</domain>`,
		},
	}
	svc := NewService(fake, zap.NewNop())

	detail := svc.Detail(context.Background(), "vm1")

	lines := strings.Split(detail, "\n")
	if len(lines) != 5 {
		t.Fatalf("Detail() = %q, want 5 lines", detail)
	}
	if lines[0] != "IPs: 192.168.122.5, 10.0.0.7" {
		t.Errorf("Detail() first line = %q", lines[0])
	}
	if lines[1] != "Network: default" {
		t.Errorf("Detail() network line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "type=network") {
		t.Errorf("Detail() interfaces line = %q", lines[2])
	}
	if lines[3] != "Emulator: /usr/bin/qemu-system-x86_64" {
		t.Errorf("Detail() emulator line = %q", lines[3])
	}
	if lines[4] != "Disks: vda: /img/a.qcow2" {
		t.Errorf("Detail() disks line = %q", lines[4])
	}
}

func TestDetailWithNothingResolvable(t *testing.T) {
	fake := &fakeCommander{
		dumpErr: map[string]error{
			"ghost": errors.New("domain not found"),
		},
	}
	svc := NewService(fake, zap.NewNop())

	detail := svc.Detail(context.Background(), "ghost")

	want := "IPs: N/A\nNetwork: N/A\nInterfaces: N/A\nEmulator: N/A\nDisks: N/A"
	if detail != want {
		t.Errorf("Detail() = %q, want %q", detail, want)
	}
}

func TestLifecyclePassthrough(t *testing.T) {
	fake := &fakeCommander{}
	svc := NewService(fake, zap.NewNop())

	if err := svc.Start(context.Background(), "vm2"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := svc.Shutdown(context.Background(), "vm1"); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if len(fake.started) != 1 || fake.started[0] != "vm2" {
		t.Errorf("started = %v, want [vm2]", fake.started)
	}
	if len(fake.shutdowns) != 1 || fake.shutdowns[0] != "vm1" {
		t.Errorf("shutdowns = %v, want [vm1]", fake.shutdowns)
	}
}
