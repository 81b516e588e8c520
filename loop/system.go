package loop

// System is a behavior run once per frame. Systems may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
