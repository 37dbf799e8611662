// pkg/nifi/inspect.go

package nifi

import (
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	"github.com/docker/docker/client"
)

// PortView is one published port of the deployment.
type PortView struct {
	HostIP        string `json:"host_ip,omitempty"`
	HostPort      uint16 `json:"host_port,omitempty"`
	ContainerPort uint16 `json:"container_port"`
}

// StatusReport summarizes a deployment for `nifictl inspect nifi`.
type StatusReport struct {
	Name     string     `json:"name"`
	Found    bool       `json:"found"`
	ID       string     `json:"id,omitempty"`
	Image    string     `json:"image,omitempty"`
	State    string     `json:"state,omitempty"`
	Status   string     `json:"status,omitempty"`
	Ports    []PortView `json:"ports,omitempty"`
	Volumes  []string   `json:"volumes"`
	TLSImage string     `json:"tls_image"`
}

// Status reports the deployment's container and which of its volumes exist.
func Status(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig) (*StatusReport, error) {
	report := &StatusReport{
		Name:     cfg.Name,
		TLSImage: cfg.TLSImageTag(),
	}

	existing, err := docker.FindContainerByName(rc.Ctx, cli, cfg.Name)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		report.Found = true
		report.ID = existing.ID[:12]
		report.Image = existing.Image
		report.State = existing.State
		report.Status = existing.Status
		for _, p := range existing.Ports {
			report.Ports = append(report.Ports, PortView{
				HostIP:        p.IP,
				HostPort:      p.PublicPort,
				ContainerPort: p.PrivatePort,
			})
		}
	}

	for _, name := range cfg.VolumeNames() {
		if _, err := cli.VolumeInspect(rc.Ctx, name); err == nil {
			report.Volumes = append(report.Volumes, name)
		}
	}

	return report, nil
}
