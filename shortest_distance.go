package gofst

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
	"github.com/golang/glog"
)

// stateQueue is the relaxation-order discipline ShortestDistance uses
// to pick which state to process next. Idempotent semirings (where
// repeated relaxation is guaranteed to settle, e.g. Tropical or
// Boolean) are processed FIFO; non-idempotent semirings (Log,
// Probability) are processed shortest-distance-first so that a
// state's weight is as converged as possible before it propagates.
type stateQueue interface {
	push(s StateId)
	pop() StateId
	empty() bool
}

type fifoQueue struct {
	items []StateId
	head  int
}

func newFifoQueue() *fifoQueue { return &fifoQueue{} }

func (q *fifoQueue) push(s StateId) { q.items = append(q.items, s) }

func (q *fifoQueue) pop() StateId {
	s := q.items[q.head]
	q.head++
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append([]StateId(nil), q.items[q.head:]...)
		q.head = 0
	}
	return s
}

func (q *fifoQueue) empty() bool { return q.head >= len(q.items) }

// priorityQueue orders states by a float64 ordering key derived from
// their current tentative distance, smallest first. The caller pushes
// a state only while it is not already queued (tracked in
// enqueued[]), so a state is never in the queue twice.
type priorityQueue struct {
	pq *priorityqueue.Queue
}

func newPriorityQueue(key func(StateId) float64) *priorityQueue {
	cmp := func(a, b interface{}) int {
		ka, kb := key(a.(StateId)), key(b.(StateId))
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	}
	return &priorityQueue{pq: priorityqueue.NewWith(utils.Comparator(cmp))}
}

func (q *priorityQueue) push(s StateId) { q.pq.Enqueue(s) }

func (q *priorityQueue) pop() StateId {
	v, _ := q.pq.Dequeue()
	return v.(StateId)
}

func (q *priorityQueue) empty() bool { return q.pq.Empty() }

// shortestDistanceDelta is the quantization threshold below which a
// relaxation is considered to have not changed a distance, the same
// 1/1024 default OpenFst's kDelta uses.
const shortestDistanceDelta = 1.0 / 1024

func weightsEqual[W any](sr Semiring[W], a, b W) bool {
	if qz, ok := any(sr).(Quantizer[W]); ok {
		a = qz.Quantize(a, shortestDistanceDelta)
		b = qz.Quantize(b, shortestDistanceDelta)
	}
	if eq, ok := any(sr).(Equaler[W]); ok {
		return eq.Equal(a, b)
	}
	return false
}

// weightOrderKey extracts a float64 ordering key for the concrete
// weight types this package ships. It is only consulted by the
// priority-queue discipline, which is only selected for those
// concrete non-idempotent semirings.
func weightOrderKey(w interface{}) float64 {
	switch v := w.(type) {
	case TropicalWeight:
		return float64(v)
	case LogWeight:
		return float64(v)
	case ProbabilityWeight:
		return -float64(v)
	case IntegerWeight:
		return float64(v)
	default:
		return 0
	}
}

// shortestDistanceIterationFactor bounds the number of state
// relaxations ShortestDistance and ShortestDistanceToFinal perform to
// this factor times (NumStates+1) before giving up and reporting
// NonConvergent, guarding against semirings (or malformed weighted
// cycles) for which the generic relaxation loop never settles.
const shortestDistanceIterationFactor = 64

// ShortestDistance computes, for every state, the sum over all paths
// from the start state to it of the product of the path's
// transitions' weights (the "shortest distance" in the sense of
// Mohri's generic single-source algorithm, which specializes to
// actual shortest path length under the Tropical semiring).
func ShortestDistance[W any](fst TrIterator[W], sr Semiring[W]) ([]W, error) {
	n, err := numStatesOf[W](fst)
	if err != nil {
		return nil, err
	}
	d := make([]W, n)
	r := make([]W, n)
	for i := range d {
		d[i] = sr.Zero()
		r[i] = sr.Zero()
	}
	if fst.Start() == NoStateId {
		return d, nil
	}

	var q stateQueue
	if _, ok := any(sr).(Idempotent[W]); ok {
		q = newFifoQueue()
	} else {
		q = newPriorityQueue(func(s StateId) float64 { return weightOrderKey(d[s]) })
	}

	enqueued := make([]bool, n)
	d[fst.Start()] = sr.One()
	r[fst.Start()] = sr.One()
	q.push(fst.Start())
	enqueued[fst.Start()] = true

	limit := (n + 1) * shortestDistanceIterationFactor
	iterations := 0
	for !q.empty() {
		iterations++
		if iterations > limit {
			return nil, newError(ErrNonConvergent, "ShortestDistance did not converge after %d relaxations", limit)
		}
		s := q.pop()
		enqueued[s] = false
		rs := r[s]
		r[s] = sr.Zero()

		trs, err := fst.Trs(s)
		if err != nil {
			return nil, err
		}
		for _, t := range trs {
			cand := sr.Plus(d[t.Nextstate], sr.Times(rs, t.Weight))
			if !weightsEqual(sr, cand, d[t.Nextstate]) {
				d[t.Nextstate] = cand
				r[t.Nextstate] = sr.Plus(r[t.Nextstate], sr.Times(rs, t.Weight))
				if !enqueued[t.Nextstate] {
					q.push(t.Nextstate)
					enqueued[t.Nextstate] = true
				}
			}
		}
	}
	if glog.V(2) {
		glog.Infof("ShortestDistance: converged after %d relaxations over %d states", iterations, n)
	}
	return d, nil
}

// ShortestDistanceToFinal computes, for every state, the shortest
// distance from it to the set of final states: the same relaxation
// as ShortestDistance but over the reversed adjacency, seeded from
// every final state's final weight. PushWeights uses this to reweight
// transitions toward the start state (ReweightToInitial).
func ShortestDistanceToFinal[W any](fst TrIterator[W], sr Semiring[W]) ([]W, error) {
	n, err := numStatesOf[W](fst)
	if err != nil {
		return nil, err
	}

	type revTr struct {
		weight W
		to     StateId
	}
	rev := make([][]revTr, n)
	for s := 0; s < n; s++ {
		trs, err := fst.Trs(StateId(s))
		if err != nil {
			return nil, err
		}
		for _, t := range trs {
			rev[t.Nextstate] = append(rev[t.Nextstate], revTr{weight: t.Weight, to: StateId(s)})
		}
	}

	d := make([]W, n)
	r := make([]W, n)
	for i := range d {
		d[i] = sr.Zero()
		r[i] = sr.Zero()
	}

	var q stateQueue
	if _, ok := any(sr).(Idempotent[W]); ok {
		q = newFifoQueue()
	} else {
		q = newPriorityQueue(func(s StateId) float64 { return weightOrderKey(d[s]) })
	}

	enqueued := make([]bool, n)
	anySeed := false
	for s := 0; s < n; s++ {
		final, err := IsFinal[W](fst, sr, StateId(s))
		if err != nil {
			return nil, err
		}
		if final {
			fw, err := fst.FinalWeight(StateId(s))
			if err != nil {
				return nil, err
			}
			d[s] = fw
			r[s] = fw
			q.push(StateId(s))
			enqueued[s] = true
			anySeed = true
		}
	}
	if !anySeed {
		return d, nil
	}

	limit := (n + 1) * shortestDistanceIterationFactor
	iterations := 0
	for !q.empty() {
		iterations++
		if iterations > limit {
			return nil, newError(ErrNonConvergent, "ShortestDistanceToFinal did not converge after %d relaxations", limit)
		}
		s := q.pop()
		enqueued[s] = false
		rs := r[s]
		r[s] = sr.Zero()

		for _, t := range rev[s] {
			cand := sr.Plus(d[t.to], sr.Times(t.weight, rs))
			if !weightsEqual(sr, cand, d[t.to]) {
				d[t.to] = cand
				r[t.to] = sr.Plus(r[t.to], sr.Times(t.weight, rs))
				if !enqueued[t.to] {
					q.push(t.to)
					enqueued[t.to] = true
				}
			}
		}
	}
	if glog.V(2) {
		glog.Infof("ShortestDistanceToFinal: converged after %d relaxations over %d states", iterations, n)
	}
	return d, nil
}
