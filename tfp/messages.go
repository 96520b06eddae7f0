package tfp

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/oocgraph/gmodel"
)

// accessMsg records that swap Sid reads edge Eid; Pass A groups these by Eid
// to discover each edge's dependency chain.
type accessMsg struct {
	Sid gmodel.SwapID
	Eid gmodel.EdgeID
}

func accessLess(a, b accessMsg) bool {
	if a.Eid != b.Eid {
		return a.Eid < b.Eid
	}
	return a.Sid < b.Sid
}

// accessCodec (de)serializes accessMsg for extsort.Sorter[accessMsg]: two
// little-endian uint64s.
type accessCodec struct{}

func (accessCodec) Encode(w io.Writer, v accessMsg) error {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.Sid))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(v.Eid))
	_, err := w.Write(buf[:])
	return err
}

func (accessCodec) Decode(r io.Reader) (accessMsg, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return accessMsg{}, err
	}
	return accessMsg{
		Sid: gmodel.SwapID(binary.LittleEndian.Uint64(buf[0:8])),
		Eid: gmodel.EdgeID(binary.LittleEndian.Uint64(buf[8:16])),
	}, nil
}

// depChainMsg carries a candidate edge value forwarded to the swap that
// will next touch Eid; keyed primarily by Sid (the delivery target) so a
// merged-source iterator over the seed sorter and the forwarding queue
// yields deliveries in increasing swap-id order.
type depChainMsg struct {
	Sid  gmodel.SwapID
	Eid  gmodel.EdgeID
	Edge gmodel.Edge
}

func depChainLess(a, b depChainMsg) bool {
	if a.Sid != b.Sid {
		return a.Sid < b.Sid
	}
	return a.Eid < b.Eid
}

// depChainCodec (de)serializes depChainMsg: two little-endian uint64s
// (Sid, Eid) followed by the edge's own wire encoding.
type depChainCodec struct{}

func (depChainCodec) Encode(w io.Writer, v depChainMsg) error {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.Sid))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(v.Eid))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	return gmodel.EdgeCodec{}.Encode(w, v.Edge)
}

func (depChainCodec) Decode(r io.Reader) (depChainMsg, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return depChainMsg{}, err
	}
	e, err := gmodel.EdgeCodec{}.Decode(r)
	if err != nil {
		return depChainMsg{}, err
	}
	return depChainMsg{
		Sid:  gmodel.SwapID(binary.LittleEndian.Uint64(buf[0:8])),
		Eid:  gmodel.EdgeID(binary.LittleEndian.Uint64(buf[8:16])),
		Edge: e,
	}, nil
}

// existReqMsg is Pass B's "does Edge exist at the time Sid runs?" query
// (spec.md §3 "Existence-query"). ForwardOnly marks a request about an
// edge that is already known to be one of the swap's pre-states (pushed
// only so Pass D can learn, uniformly through the same channel, that the
// edge's existence is tied to whether the swap that owns it is
// performed) rather than a hypothetical post-swap candidate.
type existReqMsg struct {
	Edge        gmodel.Edge
	Sid         gmodel.SwapID
	ForwardOnly bool
}

// existReqLess sorts by edge value first, matching Pass C's merge-scan
// order against the edge list, then by Sid so a group of requests for the
// same edge value streams out in increasing swap-id order.
func existReqLess(a, b existReqMsg) bool {
	if a.Edge != b.Edge {
		return a.Edge.Less(b.Edge)
	}
	return a.Sid < b.Sid
}

type existReqCodec struct{}

func (existReqCodec) Encode(w io.Writer, v existReqMsg) error {
	if err := (gmodel.EdgeCodec{}).Encode(w, v.Edge); err != nil {
		return err
	}
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.Sid))
	if v.ForwardOnly {
		buf[8] = 1
	}
	_, err := w.Write(buf[:])
	return err
}

func (existReqCodec) Decode(r io.Reader) (existReqMsg, error) {
	e, err := gmodel.EdgeCodec{}.Decode(r)
	if err != nil {
		return existReqMsg{}, err
	}
	var buf [9]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return existReqMsg{}, err
	}
	return existReqMsg{
		Edge:        e,
		Sid:         gmodel.SwapID(binary.LittleEndian.Uint64(buf[0:8])),
		ForwardOnly: buf[8] != 0,
	}, nil
}

// existInfoMsg answers an existence-query: Edge's existence bit, delivered
// to the earliest swap that asked (spec.md §3 "Existence-info"). Keyed by
// Sid so a merged source over the Pass C output and Pass D's own
// forwarding queue yields deliveries in increasing swap-id order, mirroring
// depChainMsg.
type existInfoMsg struct {
	Sid    gmodel.SwapID
	Edge   gmodel.Edge
	Exists bool
}

func existInfoLess(a, b existInfoMsg) bool {
	if a.Sid != b.Sid {
		return a.Sid < b.Sid
	}
	return a.Edge.Less(b.Edge)
}

type existInfoCodec struct{}

func (existInfoCodec) Encode(w io.Writer, v existInfoMsg) error {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.Sid))
	if v.Exists {
		buf[8] = 1
	}
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	return gmodel.EdgeCodec{}.Encode(w, v.Edge)
}

func (existInfoCodec) Decode(r io.Reader) (existInfoMsg, error) {
	var buf [9]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return existInfoMsg{}, err
	}
	e, err := gmodel.EdgeCodec{}.Decode(r)
	if err != nil {
		return existInfoMsg{}, err
	}
	return existInfoMsg{
		Sid:    gmodel.SwapID(binary.LittleEndian.Uint64(buf[0:8])),
		Exists: buf[8] != 0,
		Edge:   e,
	}, nil
}

// existSuccMsg chains existence answers along later swaps that will ask
// about the same edge value (spec.md §3 "Existence-successor"): Pass D
// reads it strictly in increasing Sid order and never pushes into it, so
// it needs no priority queue of its own.
type existSuccMsg struct {
	Sid     gmodel.SwapID
	Edge    gmodel.Edge
	NextSid gmodel.SwapID
}

func existSuccLess(a, b existSuccMsg) bool {
	if a.Sid != b.Sid {
		return a.Sid < b.Sid
	}
	return a.Edge.Less(b.Edge)
}

type existSuccCodec struct{}

func (existSuccCodec) Encode(w io.Writer, v existSuccMsg) error {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.Sid))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(v.NextSid))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	return gmodel.EdgeCodec{}.Encode(w, v.Edge)
}

func (existSuccCodec) Decode(r io.Reader) (existSuccMsg, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return existSuccMsg{}, err
	}
	e, err := gmodel.EdgeCodec{}.Decode(r)
	if err != nil {
		return existSuccMsg{}, err
	}
	return existSuccMsg{
		Sid:     gmodel.SwapID(binary.LittleEndian.Uint64(buf[0:8])),
		NextSid: gmodel.SwapID(binary.LittleEndian.Uint64(buf[8:16])),
		Edge:    e,
	}, nil
}
