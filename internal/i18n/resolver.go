package i18n

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

// CountryLookup maps a client IP to an ISO country code.
type CountryLookup interface {
	Country(ctx context.Context, ip net.IP) (string, error)
}

// Source records which signal decided a resolution.
type Source string

const (
	SourcePath     = Source("path")
	SourceLocale   = Source("locale")
	SourceGeo      = Source("geo")
	SourceFallback = Source("default")
)

// Resolver picks a language for a request: URL path first, then the
// browser's Accept-Language, then the country of the client IP. It never
// fails; every miss falls through to the default language.
type Resolver struct {
	Geo     CountryLookup
	Timeout time.Duration
	Default Language
	// TrustProxy makes the resolver geolocate the first X-Forwarded-For
	// hop. Only set it behind a proxy that overwrites the header.
	TrustProxy bool
	// OnResolve, when set, is told which source decided each resolution.
	OnResolve func(Source)
}

func NewResolver(geo CountryLookup, timeout time.Duration, def Language) *Resolver {
	if _, ok := Parse(string(def)); !ok {
		def = Default
	}
	return &Resolver{Geo: geo, Timeout: timeout, Default: def}
}

func (rv *Resolver) Resolve(ctx context.Context, r *http.Request) (Language, Source) {
	lang, src := rv.resolve(ctx, r)
	if rv.OnResolve != nil {
		rv.OnResolve(src)
	}
	return lang, src
}

func (rv *Resolver) resolve(ctx context.Context, r *http.Request) (Language, Source) {
	if r == nil {
		return rv.Default, SourceFallback
	}
	if lang, ok := FromPath(r.URL.Path); ok {
		return lang, SourcePath
	}
	if lang, ok := MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return lang, SourceLocale
	}
	if rv.Geo == nil {
		return rv.Default, SourceFallback
	}

	ip := ClientIP(r, rv.TrustProxy)
	if ip == nil || !isPublic(ip) {
		return rv.Default, SourceFallback
	}

	if rv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rv.Timeout)
		defer cancel()
	}
	country, err := rv.Geo.Country(ctx, ip)
	if err != nil {
		log.Printf("[Geo] lookup for %s failed: %v\n", ip, err)
		return rv.Default, SourceFallback
	}
	if lang, ok := ForCountry(country); ok {
		return lang, SourceGeo
	}
	return rv.Default, SourceFallback
}

// ClientIP returns the peer address, or the first X-Forwarded-For hop when
// trustProxy is set.
func ClientIP(r *http.Request, trustProxy bool) net.IP {
	if fwd := r.Header.Get("X-Forwarded-For"); trustProxy && fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}

func isPublic(ip net.IP) bool {
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast())
}
