/*
Copyright (C) 2026  pephint contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package hint

import "strconv"

// rootPithVar is the fixed name bound to the parameter or return value
// under check (spec §3: "Pith variable name ... For the root, it is a
// fixed name").
const rootPithVar = "pith"

const bitsAuxName = "bits"

// genOptions configures one Generate call.
type genOptions struct {
	forwardRefRegistry any
	noMemo             bool
}

type Option func(*genOptions)

// WithForwardRefRegistry supplies the opaque registry value forward
// references bind into the auxiliary scope, once per generation, under a
// minted forwardRefRegistry<n> name. hint never imports package forwardref;
// the value is stored verbatim without checking it, and the generated code
// hands it to runtimecheck.MustResolveForwardRef, which requires it to
// implement runtimecheck.Resolver.
func WithForwardRefRegistry(registry any) Option {
	return func(o *genOptions) { o.forwardRefRegistry = registry }
}

// WithoutMemo bypasses the memoization cache, useful for tests asserting
// idempotence across independently-run generations of equal hints.
func WithoutMemo() Option {
	return func(o *genOptions) { o.noMemo = true }
}

// genState threads the call-local generation context: the minting counters
// for placeholders and pith variable names (spec §3: both strictly
// monotonic, never reused), the auxiliary scope, the forward-ref
// accumulator, and whether the sequence handler required the pseudo-random
// bits binding.
type genState struct {
	aux              *AuxScope
	forwardRefSeen   map[string]bool
	forwardRefOrder  []string
	nextPlaceholder  int
	nextPith         int
	usesRandomBits   bool
	opts             genOptions
}

func newGenState(opts genOptions) *genState {
	return &genState{
		aux:            newAuxScope(),
		forwardRefSeen: make(map[string]bool),
		opts:           opts,
	}
}

func (g *genState) mintPlaceholder() string {
	tok := placeholderToken(g.nextPlaceholder)
	g.nextPlaceholder++
	return tok
}

func (g *genState) mintPithVar() string {
	name := pithVarName(g.nextPith)
	g.nextPith++
	return name
}

func pithVarName(i int) string {
	return "pith" + strconv.Itoa(i+1) // the root is the unnumbered rootPithVar; children start at pith1
}

func (g *genState) addForwardRefBasename(basename string) {
	if g.forwardRefSeen[basename] {
		return
	}
	g.forwardRefSeen[basename] = true
	g.forwardRefOrder = append(g.forwardRefOrder, basename)
}

// enqueue mints a fresh placeholder, builds the job, and pushes it onto q.
// Called by sign handlers for every child hint they want the BFS to visit
// (spec §4.E/§4.G).
func (g *genState) enqueue(q *workQueue, h Hint, pithExpr, pithVar string, isCapture bool, indent string) (string, error) {
	ph := g.mintPlaceholder()
	j := &job{
		hint:          h,
		placeholder:   ph,
		pithExpr:      pithExpr,
		pithVar:       pithVar,
		pithIsCapture: isCapture,
		indent:        indent,
	}
	if !q.push(j) {
		return "", errf(HintTooLarge, "work queue capacity %d exceeded", Settings.QueueCapacity)
	}
	return ph, nil
}

// Generate is the public entry point (spec §6): a pure function from a
// Hint to (code, auxiliary scope, forward-ref basenames), memoized on the
// root hint.
func Generate(h Hint, opts ...Option) (code string, aux *AuxScope, forwardRefs []string, err error) {
	var o genOptions
	for _, apply := range opts {
		apply(&o)
	}
	if !o.noMemo {
		if entry, ok := memoGet(h); ok {
			return entry.code, entry.aux, entry.forwardRefs, entry.err
		}
	}
	code, aux, forwardRefs, err = generateUncached(h, o)
	if !o.noMemo {
		memoPut(h, code, aux, forwardRefs, err)
	}
	return
}

func generateUncached(root Hint, opts genOptions) (string, *AuxScope, []string, error) {
	q := acquireQueue(Settings.QueueCapacity)
	defer releaseQueue(q)

	g := newGenState(opts)
	rootPlaceholder := g.mintPlaceholder()
	code := rootPlaceholder

	rootJob := &job{
		hint:        root,
		placeholder: rootPlaceholder,
		pithExpr:    rootPithVar,
		pithVar:     rootPithVar,
		// the root pith is already a bound function parameter, so it is
		// recorded as already-captured. No handler reads this flag: the
		// Annotated and Generic handlers bind a fresh variable either way.
		pithIsCapture: true,
		indent:        "",
	}
	if !q.push(rootJob) {
		return "", nil, nil, errf(HintTooLarge, "work queue capacity %d exceeded before root was enqueued", Settings.QueueCapacity)
	}

	for {
		j, ok := q.pop()
		if !ok {
			break
		}
		h := sanitize(j.hint)

		if isIgnorable(h) {
			return "", nil, nil, errf(HintIgnorablePresent, "ignorable hint reached the BFS queue: %s", Describe(h))
		}
		if reason, deprecated := isDeprecated(h); deprecated {
			if Settings.DeprecatedIsFatal {
				return "", nil, nil, errf(HintUnsupported, "deprecated hint forbidden: %s", reason)
			}
			warnDeprecated(reason, Describe(h))
			h = unwrapDeprecated(h)
		}
		if isUnsupported(h) {
			reason := ""
			if u, ok := h.(UnsupportedHint); ok {
				reason = u.Reason
			}
			return "", nil, nil, errf(SignUnsupported, "unsupported hint: %s", reason)
		}

		j.hint = h
		snippet, err := dispatch(g, q, j)
		if err != nil {
			return "", nil, nil, err
		}

		newCode, replaced := substituteOnce(code, j.placeholder, snippet)
		if !replaced {
			return "", nil, nil, errf(HintNonCompliant, "internal error: placeholder %s missing from accumulating code", j.placeholder)
		}
		code = newCode
	}

	if code == rootPlaceholder {
		return "", nil, nil, errf(RootNotChecked, "BFS completed without emitting a check for the root hint")
	}
	if containsPlaceholder(code) {
		return "", nil, nil, errf(HintNonCompliant, "internal error: unresolved placeholder remains in generated code")
	}

	return code, g.aux, append([]string(nil), g.forwardRefOrder...), nil
}
