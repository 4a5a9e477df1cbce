package component

// BodyContacts lists the bodies whose contact with this entity's main shape
// started during the last physics step. Only trigger contacts are recorded.
type BodyContacts struct {
	Began []uint64
}

var BodyContactsComponent = NewComponent[BodyContacts]()
