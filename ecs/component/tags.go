package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type GhostTag struct{}

var GhostTagComponent = NewComponent[GhostTag]()
