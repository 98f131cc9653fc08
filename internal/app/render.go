package app

func (a *Application) render() {
	if a.target == nil {
		a.scene.Draw(a.state.DirectViewport())
	} else {
		a.drawOffscreen()
	}

	a.overlay.Frame(a.drawPanels)

	if a.overlay.Viewports() {
		a.platform.PreserveContext(a.overlay.RenderPlatformWindows)
	}
	a.platform.SwapWindow()
}
