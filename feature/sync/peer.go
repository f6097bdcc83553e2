package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"path-cache/core/middleware/auth"
	"path-cache/core/server"
	"path-cache/core/store"

	"go.uber.org/zap"
)

// Peer runs the background reconciliation loop against the configured peer
// nodes. It periodically compares checksums, pulls full path lists from
// diverged peers, and pushes freshly generated paths as they happen.
type Peer struct {
	cfg      server.SyncConfig
	store    *store.Store
	nodeName string
	apiKey   string
	peers    []string
	client   *http.Client
	logger   *zap.Logger
}

// NewPeer creates the reconciliation loop. apiKey is attached to outbound
// requests; empty sends no credential.
func NewPeer(cfg server.SyncConfig, st *store.Store, nodeName, apiKey string, logger *zap.Logger) *Peer {
	cfg = cfg.WithDefaults()

	var peers []string
	for _, raw := range strings.Split(cfg.Peers, ",") {
		if u := strings.TrimSuffix(strings.TrimSpace(raw), "/"); u != "" {
			peers = append(peers, u)
		}
	}

	return &Peer{
		cfg:      cfg,
		store:    st,
		nodeName: nodeName,
		apiKey:   apiKey,
		peers:    peers,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

// Enabled reports whether any peers are configured.
func (p *Peer) Enabled() bool {
	return len(p.peers) > 0
}

// Run blocks until ctx is cancelled, reconciling with peers on the
// configured interval and broadcasting freshly generated paths in between.
func (p *Peer) Run(ctx context.Context) {
	if !p.Enabled() {
		return
	}

	p.logger.Info("Peer sync started",
		zap.Strings("peers", p.peers),
		zap.Int("interval_seconds", p.cfg.IntervalSeconds),
	)

	ticker := time.NewTicker(time.Duration(p.cfg.IntervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Reconcile(ctx)
		case path, ok := <-p.store.Events():
			if !ok {
				return
			}
			p.Broadcast(ctx, path)
		}
	}
}

// Reconcile compares checksums with every peer and pulls the full path list
// from any peer that disagrees. Peer errors are logged and skipped; the loop
// keeps running with whatever peers answer.
func (p *Peer) Reconcile(ctx context.Context) {
	local := p.store.Checksum()

	for _, peer := range p.peers {
		remote, err := p.fetchChecksum(ctx, peer)
		if err != nil {
			p.logger.Warn("Peer checksum failed", zap.String("peer", peer), zap.Error(err))
			continue
		}
		if remote.Checksum == local {
			continue
		}

		paths, err := p.fetchPaths(ctx, peer)
		if err != nil {
			p.logger.Warn("Peer path list failed", zap.String("peer", peer), zap.Error(err))
			continue
		}

		added := p.store.Synchronize(paths)
		p.logger.Info("Reconciled with peer",
			zap.String("peer", peer),
			zap.String("peer_node", remote.Node),
			zap.Int("received", len(paths)),
			zap.Int("added", added),
		)

		// Offer our side of the divergence so a passive peer converges too.
		p.pushAll(ctx, peer)

		// The merge changed the local key set; recompute before the next peer.
		local = p.store.Checksum()
	}
}

// pushAll posts the full local path list to one peer. Merging is
// insert-if-absent on the far side, so over-sending is harmless.
func (p *Peer) pushAll(ctx context.Context, peer string) {
	body, err := json.Marshal(MergeRequest{
		Node:  p.nodeName,
		Paths: p.store.Snapshot(),
	})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, peer+"/sync/paths", bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	p.setAuth(req)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("Path list push failed", zap.String("peer", peer), zap.Error(err))
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// Broadcast pushes one freshly generated path to every peer.
func (p *Peer) Broadcast(ctx context.Context, path *store.CachedPath) {
	body, err := json.Marshal(MergeRequest{
		Node:  p.nodeName,
		Paths: []*store.CachedPath{path},
	})
	if err != nil {
		return
	}

	for _, peer := range p.peers {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, peer+"/sync/paths", bytes.NewReader(body))
		if err != nil {
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		p.setAuth(req)

		resp, err := p.client.Do(req)
		if err != nil {
			p.logger.Debug("Path broadcast failed", zap.String("peer", peer), zap.Error(err))
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

func (p *Peer) fetchChecksum(ctx context.Context, peer string) (*ChecksumResponse, error) {
	var out ChecksumResponse
	if err := p.getJSON(ctx, peer+"/sync/checksum", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Peer) fetchPaths(ctx context.Context, peer string) ([]*store.CachedPath, error) {
	var out []*store.CachedPath
	if err := p.getJSON(ctx, peer+"/sync/paths", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Peer) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	p.setAuth(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (p *Peer) setAuth(req *http.Request) {
	if p.apiKey != "" {
		req.Header.Set(auth.Header, p.apiKey)
	}
}
