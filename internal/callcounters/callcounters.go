// Package callcounters provides named counters for how often certain operations are called,
// organized in a tree for reporting. They exist to annotate benchmarks: builds with the
// callcounters tag increment them from the counted operations, all other builds compile the
// increments away.
//
// Counters are referred to by their Id, a plain string (no whitespace, because the ids end up as
// custom metric tags in Go's benchmark output). They form two graph structures at once: the
// display-as-child relation, which groups counters into trees for reporting, and the adds-to
// relation, which propagates increments. By default a hierarchical counter recursively adds to
// its parent, so both relations coincide; attached counters and explicit AddThisToTarget links
// decouple them. The adds-to relation carries integer weights, so a counter can also subtract
// from another. The standard use is correcting for internal reuse: when an exported operation A
// internally calls an exported operation B, a weight of -1 from an attribution counter keeps the
// root from counting the B-call twice.
//
// Registration order does not matter: referring to a not-yet-created counter installs a dummy
// that is fleshed out if the real registration arrives later. Creating the same id twice panics.
//
// The package is not safe for concurrent use. Counters are registered from package init and
// incremented from benchmarks, which run on a single goroutine.
package callcounters

// Id refers to a registered call counter.
type Id string

// CallCounter is a single named counter. The exported API works on Ids; pointers only circulate
// so that registrations can be chained.
type CallCounter struct {
	id               Id                   // never ""
	display          bool                 // show this counter (and its subtree) in reports
	displayName      string               // name used in reports when requested; defaults to id
	subcounters      []*CallCounter       // children wrt the display-as-child relation
	addTo            map[*CallCounter]int // increments also add (weighted, non-recursively) to these
	addToRecursive   map[*CallCounter]int // increments also add (weighted, recursively) to these
	countDirect      int                  // raw number of Increment calls
	countModified    int                  // countDirect with all adds-to links applied; recomputed on read
	initialized      bool                 // false for dummies that were only referred to
	displayRootNode  bool                 // start reporting from here
	displayRemaining *CallCounter         // implicit child showing the difference to the sum of real children; not in the map
}

var callCounters map[Id]*CallCounter = make(map[Id]*CallCounter)

// Exists reports whether a counter with this id was actually created (dummies do not count).
func (id Id) Exists() (ret bool) {
	if id == "" {
		return false
	}
	var cc *CallCounter
	cc, ret = callCounters[id]
	if ret {
		ret = cc.initialized
	}
	return
}

// addDummyCounter registers an uninitialized placeholder for id, so that forward references can
// already take a pointer.
func addDummyCounter(id Id) *CallCounter {
	if id == "" {
		panic("callCounters: trying to create a dummy call counter with empty id")
	}
	cc, exists := callCounters[id]
	if exists {
		if cc.initialized {
			panic("callCounters: trying to overwrite an existing call counter with a dummy")
		}
		return cc
	}
	cc = &CallCounter{id: id}
	cc.addTo = make(map[*CallCounter]int)
	cc.addToRecursive = make(map[*CallCounter]int)
	cc.subcounters = make([]*CallCounter, 0)
	callCounters[id] = cc
	return cc
}

// getCounter translates id to *CallCounter, installing a dummy if the id is new.
func getCounter(id Id) (ret *CallCounter, existed bool) {
	if id == "" {
		panic("callCounters: called getCounter with empty id")
	}
	ret, existed = callCounters[id]
	if !existed {
		ret = addDummyCounter(id)
	}
	if ret == nil {
		panic("callCounters: counter map contained nil entry")
	}
	return
}

// CreateHierarchicalCallCounter creates and registers a counter that displays under parentId and
// recursively adds to it. An empty parentId makes it a display root. The parent may be created
// later (or never; then it stays a displayed dummy root).
func CreateHierarchicalCallCounter(id Id, displayName string, parentId Id) *CallCounter {
	if id == "" {
		panic("callCounters: called CreateHierarchicalCallCounter with empty id")
	}
	cc, existed := getCounter(id)
	if existed && cc.initialized {
		panic("callCounters: added the same counter twice")
	}
	cc.display = true
	if displayName != "" {
		cc.displayName = displayName
	} else {
		cc.displayName = string(id)
	}
	cc.initialized = true
	if parentId == "" {
		cc.displayRootNode = true
		return cc
	}
	cc.displayRootNode = false
	parent, existed := getCounter(parentId)
	if !existed {
		// Defaults in case the parent never gets properly created.
		parent.displayRootNode = true
		parent.display = true
		parent.displayName = string(parentId) + "(dummy)"
	}
	linkAsChildParent(cc, parent)
	cc.addToRecursive[parent] += 1
	if cc.addToRecursive[parent] == 0 {
		delete(cc.addToRecursive, parent)
	}
	return cc
}

// linkAsChildParent records the display-as-child relation. Use this rather than appending to
// subcounters directly; a pending displayRemaining child needs the -1 link.
func linkAsChildParent(child *CallCounter, parent *CallCounter) {
	parent.subcounters = append(parent.subcounters, child)
	if parent.displayRemaining != nil {
		child.addTo[parent.displayRemaining] = -1
	}
}

// CreateNewCallCounter creates and registers a counter with all knobs exposed: doDisplay controls
// whether it shows up in reports at all, attachTo (if non-empty) makes it display under that
// counter WITHOUT adding to it, displayRootNode marks it as a reporting root.
func CreateNewCallCounter(id Id, displayName string, doDisplay bool, attachTo Id, displayRootNode bool) (cc *CallCounter) {
	if id == "" {
		panic("callCounters: called CreateNewCallCounter with empty id")
	}
	cc, _ = getCounter(id)
	if cc.initialized {
		panic("callCounters: trying to create a call counter for an already used id")
	}
	cc.displayName = displayName
	cc.id = id
	cc.initialized = true
	cc.displayRootNode = displayRootNode
	cc.display = doDisplay
	if attachTo != "" {
		parent, _ := getCounter(attachTo)
		linkAsChildParent(cc, parent)
	}
	return
}

// CreateAttachedCallCounter creates and registers a counter that displays under attachTo without
// adding to it. The attached-to counter additionally displays the difference between itself and
// its children, so attached counters read as an attribution breakdown.
func CreateAttachedCallCounter(id Id, displayName string, attachTo Id) (cc *CallCounter) {
	cc = CreateNewCallCounter(id, displayName, true, attachTo, false)
	attachTo.SetDisplayRemaining(true)
	return
}

// SetDisplayRemaining sets or unsets the display-remaining flag, see the method on *CallCounter.
func (id Id) SetDisplayRemaining(displayRemaining bool) *CallCounter {
	if id == "" {
		panic("callCounters: called SetDisplayRemaining with empty id")
	}
	cc, _ := getCounter(id)
	return cc.SetDisplayRemaining(displayRemaining)
}

// SetDisplayRemaining sets or unsets the display-remaining flag on a counter. While set, reports
// show an implicit extra child counting the difference between the counter and the sum of its
// real children. The implicit child lives outside the id map and cannot be incremented directly.
func (cc *CallCounter) SetDisplayRemaining(displayRemaining bool) *CallCounter {
	if displayRemaining {
		if cc.displayRemaining != nil {
			return cc
		}
		remains := &CallCounter{id: cc.id + "Other", display: true, displayName: string(cc.id) + "(other)"}
		remains.subcounters = make([]*CallCounter, 0)
		remains.initialized = true
		remains.addTo = make(map[*CallCounter]int)
		remains.addToRecursive = make(map[*CallCounter]int)
		// remains = cc - sum of current children; children added later get their -1 link from
		// linkAsChildParent.
		cc.displayRemaining = remains
		cc.addTo[remains] = +1
		for _, child := range cc.subcounters {
			child.addTo[remains] = -1
		}
		cc.subcounters = append(cc.subcounters, remains)
	} else {
		if cc.displayRemaining == nil {
			return cc
		}
		delete(cc.addTo, cc.displayRemaining)
		for _, child := range cc.subcounters {
			delete(child.addTo, cc.displayRemaining)
		}
		numChildren := len(cc.subcounters)
		for i, child := range cc.subcounters {
			if child == cc.displayRemaining {
				cc.subcounters[i] = cc.subcounters[numChildren-1]
				cc.subcounters[numChildren-1] = nil
				cc.subcounters = cc.subcounters[0 : numChildren-1]
				break
			} else if i == numChildren-1 {
				panic("callCounters: internal error: remaining-counter not found among subcounters")
			}
		}
		cc.displayRemaining = nil
	}
	return cc
}

// AddThisToTarget makes every increment of the receiver also recursively add to targetId with the
// given multiplier (negative multipliers subtract). Multiple links to the same target accumulate.
// Returns the receiver for chaining.
func (cc *CallCounter) AddThisToTarget(targetId Id, multiplier int) *CallCounter {
	if multiplier == 0 {
		return cc
	}
	if targetId == "" {
		panic("callCounters: called AddThisToTarget with empty target id")
	}
	target, _ := getCounter(targetId)
	cc.addToRecursive[target] += multiplier
	if cc.addToRecursive[target] == 0 {
		delete(cc.addToRecursive, target)
	}
	return cc
}

// AddThisToTarget makes every increment of the counter with this id also recursively add to
// targetId with the given multiplier. See the method on *CallCounter.
func (id Id) AddThisToTarget(targetId Id, multiplier int) *CallCounter {
	if id == "" {
		panic("callCounters: called AddThisToTarget with empty id")
	}
	cc, _ := getCounter(id)
	return cc.AddThisToTarget(targetId, multiplier)
}

// CCReport is one entry of a counter report.
type CCReport struct {
	Tag   string       // id or display name, depending on the query
	CC    *CallCounter // the counter itself
	Calls int          // counter value with all adds-to links applied
	depth int          // depth in the display tree
}

// getCallCountersBelowNode collects the report entries for cc's display subtree. Assumes
// correctDependencies has run. onlyPositive prunes subtrees whose root has count 0.
func getCallCountersBelowNode(cc *CallCounter, onlyPositive bool, onlyDisplay bool, useDisplayName bool, depth int) (ret []CCReport) {
	ret = make([]CCReport, 0)
	if !cc.display && onlyDisplay {
		return
	}
	if cc.countModified == 0 && onlyPositive {
		return
	}
	report := CCReport{CC: cc, depth: depth, Calls: cc.countModified}
	if useDisplayName {
		report.Tag = cc.displayName
	} else {
		report.Tag = string(cc.id)
	}
	ret = append(ret, report)
	for _, child := range cc.subcounters {
		ret = append(ret, getCallCountersBelowNode(child, onlyPositive, onlyDisplay, useDisplayName, depth+1)...)
	}
	return
}

// ReportCallCounters returns report entries for all display roots and their subtrees, in display
// pre-order within each root. onlyPositive drops counters (with their subtrees) that are 0.
func ReportCallCounters(onlyPositive bool, useDisplayName bool) (ret []CCReport) {
	correctDependencies()
	ret = make([]CCReport, 0)
	for _, rootNode := range callCounters {
		if rootNode.displayRootNode {
			ret = append(ret, getCallCountersBelowNode(rootNode, onlyPositive, true, useDisplayName, 0)...)
		}
	}
	return
}

// ResetAllCounters resets every counter to 0.
func ResetAllCounters() {
	for _, cc := range callCounters {
		cc.countDirect = 0
		// displayRemaining counters have countDirect == 0 throughout.
	}
}

// Reset resets this counter to 0.
func (cc *CallCounter) Reset() {
	cc.countDirect = 0
}

// Reset resets the counter with this id to 0.
func (id Id) Reset() {
	cc, _ := getCounter(id)
	cc.Reset()
}

// correctDependencies recomputes all countModified values from the raw counts and the adds-to
// links. Called before every read.
func correctDependencies() {
	for _, cc := range callCounters {
		cc.countModified = 0
		if cc.displayRemaining != nil {
			cc.displayRemaining.countModified = 0
		}
	}
	for _, cc := range callCounters {
		if cc.countDirect != 0 {
			cc.recursivelyModifyBy(cc.countDirect)
		}
	}
}

func (cc *CallCounter) recursivelyModifyBy(amount int) {
	cc.countModified += amount
	for target, multiplier := range cc.addTo {
		target.countModified += amount * multiplier
	}
	for target, multiplier := range cc.addToRecursive {
		target.recursivelyModifyBy(amount * multiplier)
	}
}

// Get returns the counter value with all adds-to links applied.
func (cc *CallCounter) Get() (ret int, ok bool) {
	correctDependencies()
	return cc.countModified, true
}

// Get returns the value of the counter with this id, with all adds-to links applied. ok is false
// if no such counter was ever referred to.
func (id Id) Get() (ret int, ok bool) {
	if id == "" {
		panic("callCounters: called Get with empty id")
	}
	correctDependencies()
	cc, ok := callCounters[id]
	if !ok {
		return 0, false
	}
	return cc.countModified, true
}

// Increment adds 1 to the counter with this id. The counter must have been properly created.
func (id Id) Increment() {
	if id == "" {
		panic("callCounters: Increment called with empty id")
	}
	cc := callCounters[id]
	if cc == nil {
		panic("callCounters: trying to increment non-existent call counter")
	}
	if !cc.initialized {
		panic("callCounters: trying to increment uninitialized dummy counter")
	}
	cc.countDirect++
}
