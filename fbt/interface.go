package fbt

// Element and attribute names of the function block type schema.
const (
	elemVersionInfo   = "VersionInfo"
	elemInterfaceList = "InterfaceList"
	elemEventInputs   = "EventInputs"
	elemEventOutputs  = "EventOutputs"
	elemInputVars     = "InputVars"
	elemOutputVars    = "OutputVars"
	elemEvent         = "Event"
	elemVarDecl       = "VarDeclaration"

	attrName    = "Name"
	attrType    = "Type"
	attrVersion = "Version"
)

// Defaults for absent attributes.
const (
	DefaultBlockName = "Unknown"
	DefaultVersion   = "1.0"
	DefaultPinName   = "Unnamed"
	DefaultVarType   = "Unknown"
)

// Event is an event pin.
type Event struct {
	Name string
}

// Var is a data variable pin.
type Var struct {
	Name string
	Type string
}

// InterfaceSpec is the interface of a function block: its name, version
// and the four ordered pin lists.
type InterfaceSpec struct {
	Name         string
	Version      string
	EventInputs  []Event
	EventOutputs []Event
	InputVars    []Var
	OutputVars   []Var
}

// MaxEvents returns the larger of the event input and output counts.
func (s *InterfaceSpec) MaxEvents() int {
	return max(len(s.EventInputs), len(s.EventOutputs))
}

// MaxVars returns the larger of the variable input and output counts.
func (s *InterfaceSpec) MaxVars() int {
	return max(len(s.InputVars), len(s.OutputVars))
}

// FromNode derives the interface from a parsed block tree.
//
// The root's Name attribute names the block. When several VersionInfo
// children exist the last one with a Version attribute wins. Every
// InterfaceList child contributes its pins in document order.
func FromNode(root *Node) InterfaceSpec {
	spec := InterfaceSpec{
		Name:    DefaultBlockName,
		Version: DefaultVersion,
	}
	if root == nil {
		return spec
	}
	spec.Name = root.AttrOr(attrName, DefaultBlockName)

	for _, child := range root.Children {
		switch child.Name {
		case elemVersionInfo:
			if v, ok := child.Attr(attrVersion); ok {
				spec.Version = v
			}
		case elemInterfaceList:
			spec.addInterfaceList(child)
		}
	}
	return spec
}

func (s *InterfaceSpec) addInterfaceList(list *Node) {
	for _, group := range list.Children {
		switch group.Name {
		case elemEventInputs:
			s.EventInputs = appendEvents(s.EventInputs, group)
		case elemEventOutputs:
			s.EventOutputs = appendEvents(s.EventOutputs, group)
		case elemInputVars:
			s.InputVars = appendVars(s.InputVars, group)
		case elemOutputVars:
			s.OutputVars = appendVars(s.OutputVars, group)
		}
	}
}

func appendEvents(dst []Event, group *Node) []Event {
	for _, n := range group.Children {
		if n.Name == elemEvent {
			dst = append(dst, Event{Name: n.AttrOr(attrName, DefaultPinName)})
		}
	}
	return dst
}

func appendVars(dst []Var, group *Node) []Var {
	for _, n := range group.Children {
		if n.Name == elemVarDecl {
			dst = append(dst, Var{
				Name: n.AttrOr(attrName, DefaultPinName),
				Type: n.AttrOr(attrType, DefaultVarType),
			})
		}
	}
	return dst
}
