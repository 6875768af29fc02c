package ftapp

//go:generate mockgen -destination=ftappmocks/mock_app.go -package=ftappmocks github.com/filetug/ftbrowse/pkg/ftbrowse/ftapp App

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the browser talks to.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
}

type UpdateDrawQueuer func(f func())

type RootSetter func(root tview.Primitive, fullscreen bool)

type AppMethod func(na *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(queueUpdateDraw UpdateDrawQueuer) AppMethod {
	return func(na *appProxy) {
		na.queueUpdateDraw = queueUpdateDraw
	}
}

func WithSetRoot(setRoot RootSetter) AppMethod {
	return func(na *appProxy) {
		na.setRoot = setRoot
	}
}

func WithRun(run func() error) AppMethod {
	return func(na *appProxy) {
		na.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(na *appProxy) {
		na.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw UpdateDrawQueuer
	setRoot         RootSetter
	run             func() error
	stop            func()
}

func (n appProxy) QueueUpdateDraw(f func()) {
	n.queueUpdateDraw(f)
}

func (n appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	n.setRoot(root, fullscreen)
}

func (n appProxy) Run() error {
	return n.run()
}

func (n appProxy) Stop() {
	n.stop()
}
