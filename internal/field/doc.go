// Package field implements the state shared by every editable component:
// resolving controlled against uncontrolled values, running validation,
// tracking whether an error should be displayed, and delivering change
// events.
//
// A field is controlled when its caller supplies a value. The caller then
// owns the value and must feed it back on every render through Sync; the
// field only reports what the user attempted via OnChange. Otherwise the
// field is uncontrolled and keeps the value itself.
//
//	f := field.New(field.Options[string]{
//		Name:     "email",
//		Required: true,
//		Accessor: func(raw any) string { return input.Value() },
//		OnChange: func(ev field.ChangeEvent[string]) { ... },
//	})
//	f.OnRawChange(msg)
//
// The mode is fixed when the field is created. Switching between controlled
// and uncontrolled afterwards is a programmer error: it is reported through
// Options.OnMisuse and otherwise ignored.
//
// Fields are not safe for concurrent use. They belong to one component and
// are driven from the host framework's single event loop.
package field
