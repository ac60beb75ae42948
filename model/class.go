package model

import (
	"github.com/wmeredith/dxf/core"
)

// Class is one CLASS record, mapping a record name to the application
// class that implements it.
type Class struct {
	RecordName    string // code 1
	ClassName     string // code 2
	AppName       string // code 3
	ProxyFlags    *int64 // code 90
	InstanceCount *int64 // code 91
	WasProxy      *int64 // code 280
	IsEntity      *int64 // code 281
}

// ClassesSection holds the CLASS records in file order.
type ClassesSection struct {
	Classes []*Class
}

func (c *Class) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			return nil
		}

		switch g.Code {
		case 1:
			c.RecordName, _ = g.Text()
		case 2:
			c.ClassName, _ = g.Text()
		case 3:
			c.AppName, _ = g.Text()
		case 90:
			c.ProxyFlags = intOf(g)
		case 91:
			c.InstanceCount = intOf(g)
		case 280:
			c.WasProxy = intOf(g)
		case 281:
			c.IsEntity = intOf(g)
		default:
			sink.Warnf("CLASS: unhandled group %s", g)
		}
	}
}

func (c *Class) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(0, "CLASS"))
	if c.RecordName != "" {
		dst = append(dst, core.TextGroup(1, c.RecordName))
	}
	if c.ClassName != "" {
		dst = append(dst, core.TextGroup(2, c.ClassName))
	}
	if c.AppName != "" {
		dst = append(dst, core.TextGroup(3, c.AppName))
	}
	dst = appendInt(dst, 90, c.ProxyFlags)
	dst = appendInt(dst, 91, c.InstanceCount)
	dst = appendInt(dst, 280, c.WasProxy)
	dst = appendInt(dst, 281, c.IsEntity)
	return dst
}
