package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	site := domain.Site{ID: "FS0001", Name: "Loch Ailort", Company: "Mowi Scotland"}
	site.SetPosition(domain.Position{Lat: 56.87, Lon: -5.69}, true)

	msg, err := serializeToMessage("uk", 0, site, now)
	require.NoError(t, err)

	assert.Equal(t, []byte("uk:FS0001"), msg.Key)
	assert.Contains(t, string(msg.Value), `"site_name":"Loch Ailort"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "region", msg.Headers[0].Key)
	assert.Equal(t, []byte("uk"), msg.Headers[0].Value)
	assert.Equal(t, "published_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)

	var decoded domain.Site
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	p, ok := decoded.Position()
	require.True(t, ok)
	assert.InDelta(t, 56.87, p.Lat, 1e-9)
}

func TestSerializeToMessage_AbsentCoordinates(t *testing.T) {
	msg, err := serializeToMessage("iceland", 3, domain.Site{Name: "Dýrafjörður"}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []byte("iceland:row-3"), msg.Key)
	assert.NotContains(t, string(msg.Value), "latitude")
	assert.NotContains(t, string(msg.Value), "longitude")
}
