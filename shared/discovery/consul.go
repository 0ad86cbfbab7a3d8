package discovery

import (
	"fmt"
	"net"
	"strconv"

	consulapi "github.com/hashicorp/consul/api"
	"github.com/rs/zerolog"
)

// Registration describes one service instance.
type Registration struct {
	ID      string
	Name    string
	Address string
	Port    int
	Tags    []string
	// HealthPath is polled by the agent over HTTP on Address:Port.
	HealthPath string
}

type ConsulRegistry struct {
	client *consulapi.Client
	logger *zerolog.Logger
}

func NewConsulRegistry(address string, logger *zerolog.Logger) (*ConsulRegistry, error) {
	cfg := consulapi.DefaultConfig()
	cfg.Address = address

	client, err := consulapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	return &ConsulRegistry{client: client, logger: logger}, nil
}

func (r *ConsulRegistry) Register(reg Registration) error {
	registration := &consulapi.AgentServiceRegistration{
		ID:      reg.ID,
		Name:    reg.Name,
		Tags:    reg.Tags,
		Port:    reg.Port,
		Address: reg.Address,
	}

	if reg.HealthPath != "" {
		registration.Check = &consulapi.AgentServiceCheck{
			HTTP:                           "http://" + net.JoinHostPort(reg.Address, strconv.Itoa(reg.Port)) + reg.HealthPath,
			Interval:                       "10s",
			Timeout:                        "2s",
			DeregisterCriticalServiceAfter: "1m",
		}
	}

	if err := r.client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register service %s: %w", reg.ID, err)
	}

	r.logger.Info().Str("service_id", reg.ID).Str("name", reg.Name).Msg("registered service with consul")

	return nil
}

func (r *ConsulRegistry) Deregister(id string) error {
	if err := r.client.Agent().ServiceDeregister(id); err != nil {
		return fmt.Errorf("failed to deregister service %s: %w", id, err)
	}

	r.logger.Info().Str("service_id", id).Msg("deregistered service from consul")

	return nil
}
