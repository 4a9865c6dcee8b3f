package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/miekg/dns"
)

var ERR_FORBIDDEN_ADDRESS = errors.New(`texture host resolves to a non-public address`)

func lookupIP(ctx context.Context, resolver, host string) ([]net.IP, error) {
	if resolver == "" {
		return net.DefaultResolver.LookupIP(ctx, "ip", host)
	}

	var addrs []net.IP
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		found, err := queryAddrs(ctx, resolver, host, qtype)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, found...)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("lookupIP(%v): no addresses", host)
	}
	return addrs, nil
}

func queryAddrs(ctx context.Context, resolver, host string, qtype uint16) ([]net.IP, error) {
	msg := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			RecursionDesired: true,
			CheckingDisabled: false,
		},
		Question: []dns.Question{{
			Name:   dns.Fqdn(host),
			Qtype:  qtype,
			Qclass: uint16(dns.ClassINET),
		}},
	}
	msg.Id = dns.Id()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", resolver)
	if err != nil {
		return nil, fmt.Errorf("socket.Dial(%v, %v): %v", "udp", resolver, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	dnsc := &dns.Conn{Conn: conn}
	defer dnsc.Close()
	if err := dnsc.WriteMsg(msg); err != nil {
		return nil, fmt.Errorf("dnsc.WriteMsg(%v): %v", msg, err)
	}
	rmsg, err := dnsc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("dnsc.ReadMsg(): %v", err)
	}
	if rmsg.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("lookup %v: %v", host, dns.RcodeToString[rmsg.Rcode])
	}

	// CNAME chains come back in the same answer section, so every address
	// record counts regardless of its owner name.
	var addrs []net.IP
	for _, rr := range rmsg.Answer {
		switch rr := rr.(type) {
		case *dns.A:
			addrs = append(addrs, rr.A)
		case *dns.AAAA:
			addrs = append(addrs, rr.AAAA)
		}
	}
	return addrs, nil
}

func isPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast())
}

// guardedDialer keeps texture fetches from reaching internal services:
// hosts are resolved up front and non-public addresses refused.
type guardedDialer struct {
	resolver     string
	allowPrivate bool
	dialer       net.Dialer
}

func (g *guardedDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}

	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else if ips, err = lookupIP(ctx, g.resolver, host); err != nil {
		return nil, err
	}

	var lastErr error = ERR_FORBIDDEN_ADDRESS
	for _, ip := range ips {
		if !g.allowPrivate && !isPublicIP(ip) {
			log.Printf("Refusing to dial %v (%v) for texture fetch", host, ip)
			continue
		}
		conn, err := g.dialer.DialContext(ctx, network, net.JoinHostPort(ip.String(), port))
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
