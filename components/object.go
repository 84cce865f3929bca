package components

import (
	"github.com/automoto/trapdoor/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ProxyPadding widens broadphase proxies so resolv's inclusive cell rounding
// never drops a cell the shape reaches into by less than a pixel.
const ProxyPadding = 1

// ColliderData is a body's collision shape plus its flags. Proxy is the body's
// bounding box in the resolv space, used only to find nearby candidates.
type ColliderData struct {
	Shape   *collision.Shape
	Enabled bool // Disabled colliders neither block nor report
	Trigger bool // Triggers report contacts but never block
	Proxy   *resolv.Object
}

// Fit moves the proxy around the shape placed at pos.
func (c *ColliderData) Fit(pos collision.Position) {
	if c.Proxy == nil {
		return
	}
	min, max := c.Shape.Bounds(pos)
	c.Proxy.X = min.X - ProxyPadding
	c.Proxy.Y = min.Y - ProxyPadding
	c.Proxy.W = max.X - min.X + 2*ProxyPadding
	c.Proxy.H = max.Y - min.Y + 2*ProxyPadding
	c.Proxy.Update()
}

var Collider = donburi.NewComponentType[ColliderData]()
