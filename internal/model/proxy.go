package model

import "sort"

// ProxyType is the "type" tag the external controller reports for a proxy
// or proxy group.
type ProxyType string

const (
	// Group kinds: entries that aggregate other proxies.
	TypeSelector    ProxyType = "Selector"
	TypeURLTest     ProxyType = "URLTest"
	TypeFallback    ProxyType = "Fallback"
	TypeLoadBalance ProxyType = "LoadBalance"
	TypeRelay       ProxyType = "Relay"

	// Built-in kinds.
	TypeDirect ProxyType = "Direct"
	TypeReject ProxyType = "Reject"

	// Leaf kinds: concrete outbound proxies for which latency is meaningful.
	TypeShadowsocks  ProxyType = "Shadowsocks"
	TypeShadowsocksR ProxyType = "ShadowsocksR"
	TypeVmess        ProxyType = "Vmess"
	TypeVless        ProxyType = "Vless"
	TypeTrojan       ProxyType = "Trojan"
	TypeSnell        ProxyType = "Snell"
	TypeSocks5       ProxyType = "Socks5"
	TypeHTTP         ProxyType = "Http"
	TypeHysteria     ProxyType = "Hysteria"
	TypeHysteria2    ProxyType = "Hysteria2"
	TypeTuic         ProxyType = "Tuic"
	TypeWireGuard    ProxyType = "WireGuard"

	TypeUnknown ProxyType = "Unknown"
)

// IsGroup reports whether the type aggregates other proxies rather than
// terminating a connection.
func (t ProxyType) IsGroup() bool {
	switch t {
	case TypeSelector, TypeURLTest, TypeFallback, TypeLoadBalance, TypeRelay:
		return true
	}
	return false
}

// IsNormal reports whether the type is a leaf connection target, i.e.
// whether a latency measurement means anything for it.
func (t ProxyType) IsNormal() bool {
	switch t {
	case TypeShadowsocks, TypeShadowsocksR, TypeVmess, TypeVless, TypeTrojan,
		TypeSnell, TypeSocks5, TypeHTTP, TypeHysteria, TypeHysteria2,
		TypeTuic, TypeWireGuard:
		return true
	}
	return false
}

func (t ProxyType) String() string {
	if t == "" {
		return string(TypeUnknown)
	}
	return string(t)
}

// History is one latency sample. The controller keeps a rolling list; only
// the most recent entry is ever consumed. A Delay of 0 means "measured but
// unreachable", which renders the same as "never measured".
type History struct {
	Time  string `json:"time"`
	Delay uint16 `json:"delay"`
}

// Proxy is one record in the controller's flat name-to-proxy map. Group
// entries carry All (ordered member names) and Now (active member name);
// leaf entries carry latency history and the UDP capability flag.
type Proxy struct {
	Type    ProxyType `json:"type"`
	History []History `json:"history"`
	UDP     bool      `json:"udp"`
	All     []string  `json:"all,omitempty"`
	Now     string    `json:"now,omitempty"`
}

// Latest returns the newest latency sample, or nil if none was taken.
func (p Proxy) Latest() *History {
	if len(p.History) == 0 {
		return nil
	}
	h := p.History[0]
	return &h
}

// Proxies is one full snapshot of controller proxy state.
type Proxies map[string]Proxy

// GroupNames returns the names of all group-like entries in ascending
// order, which fixes iteration order for snapshot conversion.
func (p Proxies) GroupNames() []string {
	names := make([]string, 0, len(p))
	for name, proxy := range p {
		if proxy.Type.IsGroup() && proxy.All != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
