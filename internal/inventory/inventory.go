package inventory

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/virtui/virtui/internal/domxml"
	"github.com/virtui/virtui/internal/virsh"
)

// Commander is the slice of the control tool client the inventory needs.
// *virsh.Client satisfies it; tests substitute canned output.
type Commander interface {
	List(ctx context.Context, all bool) (string, error)
	DumpXML(ctx context.Context, name string) (string, error)
	ResolveAddresses(ctx context.Context, name string) []string
	Start(ctx context.Context, name string) error
	Shutdown(ctx context.Context, name string) error
	ConsoleCommand(name string) *exec.Cmd
	SSHCommand(user, addr string) *exec.Cmd
}

// Service assembles dashboard snapshots and detail views from control
// tool output.
type Service struct {
	client Commander
	logger *zap.Logger
}

// NewService creates a service over the given client.
func NewService(client Commander, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Refresh returns a fresh snapshot of the inventory. A list failure is
// returned to the caller: with no list there is nothing to show, so it
// is fatal there. Per-domain enrichment failures only leave the "N/A"
// defaults in place.
func (s *Service) Refresh(ctx context.Context, includeInactive bool) ([]virsh.Domain, error) {
	out, err := s.client.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("domain list failed", zap.Error(err))
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	domains := virsh.ParseList(out)
	s.logger.Info("domain list refreshed",
		zap.Int("count", len(domains)),
		zap.Bool("include_inactive", includeInactive),
	)

	for i := range domains {
		s.enrich(ctx, &domains[i])
	}

	return domains, nil
}

// enrich fills VCPUs and Memory from the domain descriptor when it can
// be fetched and parsed.
func (s *Service) enrich(ctx context.Context, d *virsh.Domain) {
	descriptor, err := s.client.DumpXML(ctx, d.Name)
	if err != nil {
		s.logger.Warn("descriptor unavailable",
			zap.String("domain", d.Name),
			zap.Error(err),
		)
		return
	}

	res, _ := domxml.Parse(descriptor)
	if res.VCPUs != "" {
		d.VCPUs = res.VCPUs
	}
	if res.Memory != "" {
		d.Memory = res.Memory
	}
}

// Detail builds the text for one domain's detail panel: resolved
// addresses first, then the descriptor overview. Failures degrade to
// "N/A" lines rather than errors; the panel always has something to
// show.
func (s *Service) Detail(ctx context.Context, name string) string {
	addrs := s.client.ResolveAddresses(ctx, name)
	ips := "N/A"
	if len(addrs) > 0 {
		ips = strings.Join(addrs, ", ")
	}

	var sum domxml.Summary
	descriptor, err := s.client.DumpXML(ctx, name)
	if err != nil {
		s.logger.Warn("descriptor unavailable",
			zap.String("domain", name),
			zap.Error(err),
		)
	} else {
		_, sum = domxml.Parse(descriptor)
	}

	return "IPs: " + ips + "\n" + sum.Render()
}

// Addresses returns the domain's resolved IPv4 addresses.
func (s *Service) Addresses(ctx context.Context, name string) []string {
	return s.client.ResolveAddresses(ctx, name)
}

// Start boots the named domain.
func (s *Service) Start(ctx context.Context, name string) error {
	return s.client.Start(ctx, name)
}

// Shutdown asks the named domain to shut down gracefully.
func (s *Service) Shutdown(ctx context.Context, name string) error {
	return s.client.Shutdown(ctx, name)
}

// ConsoleCommand builds the interactive console invocation.
func (s *Service) ConsoleCommand(name string) *exec.Cmd {
	return s.client.ConsoleCommand(name)
}

// SSHCommand builds the interactive remote shell invocation.
func (s *Service) SSHCommand(user, addr string) *exec.Cmd {
	return s.client.SSHCommand(user, addr)
}
