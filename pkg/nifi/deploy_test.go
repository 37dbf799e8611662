// pkg/nifi/deploy_test.go

package nifi

import (
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostIP(t *testing.T) {
	assert.Equal(t, "127.0.0.1", hostIP("localhost"))
	assert.Equal(t, "0.0.0.0", hostIP("0.0.0.0"))
}

func TestPortConfig(t *testing.T) {
	exposed, bindings := portConfig(8443, "127.0.0.1", []int{5050, 5051, 5052})

	require.Len(t, exposed, 4)
	require.Len(t, bindings, 4)

	web := bindings[nat.Port("8443/tcp")]
	require.Len(t, web, 1)
	assert.Equal(t, "127.0.0.1", web[0].HostIP)
	assert.Equal(t, "8443", web[0].HostPort)

	for _, p := range []string{"5050/tcp", "5051/tcp", "5052/tcp"} {
		aux := bindings[nat.Port(p)]
		require.Len(t, aux, 1, "missing binding for %s", p)
		assert.Equal(t, "0.0.0.0", aux[0].HostIP)
	}
}

func TestPortConfigSingleAuxiliary(t *testing.T) {
	exposed, bindings := portConfig(9443, "0.0.0.0", auxiliaryPorts[:1])

	require.Len(t, exposed, 2)
	assert.Contains(t, bindings, nat.Port("9443/tcp"))
	assert.Contains(t, bindings, nat.Port("5050/tcp"))
	assert.NotContains(t, bindings, nat.Port("5051/tcp"))
	assert.NotContains(t, bindings, nat.Port("5052/tcp"))
}
