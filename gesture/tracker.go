package gesture

// Handler receives classified gestures.
type Handler interface {
	HandleGesture(g Gesture, s Stroke)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(g Gesture, s Stroke)

func (f HandlerFunc) HandleGesture(g Gesture, s Stroke) {
	f(g, s)
}

// Tracker follows one touch from press to release and dispatches the resulting gesture.
type Tracker struct {
	classifier *Classifier
	handler    Handler

	active bool
	x0, y0 float64
}

// NewTracker creates a tracker reporting to handler. A nil classifier uses the defaults.
func NewTracker(classifier *Classifier, handler Handler) *Tracker {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Tracker{classifier: classifier, handler: handler}
}

// Classifier returns the classifier used by the tracker.
func (t *Tracker) Classifier() *Classifier {
	return t.classifier
}

// Active reports whether a touch is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Begin records the start of a touch.
func (t *Tracker) Begin(x, y float64) {
	t.active = true
	t.x0, t.y0 = x, y
}

// Cancel forgets the touch in progress without dispatching anything.
func (t *Tracker) Cancel() {
	t.active = false
}

// End completes the touch at (x, y), classifies it and dispatches it to the handler.
// It returns false when no touch was in progress.
func (t *Tracker) End(x, y float64) (Gesture, Stroke, bool) {
	if !t.active {
		return 0, Stroke{}, false
	}
	t.active = false

	s := Stroke{X0: t.x0, Y0: t.y0, X1: x, Y1: y, DX: x - t.x0, DY: y - t.y0}
	g := t.classifier.Classify(s.DX, s.DY)
	if t.handler != nil {
		t.handler.HandleGesture(g, s)
	}
	return g, s, true
}
