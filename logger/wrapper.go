package logger

type LevelWrapper struct {
	Base
	kv []any
}

// WrapLogger lifts a Base into a full Logger. Fields added through With are
// prepended to every call.
func WrapLogger(l Base) Logger {
	if w, ok := l.(*LevelWrapper); ok {
		return w
	}
	return &LevelWrapper{Base: l}
}

func (w *LevelWrapper) Log(level LogLevel, msg string, kv ...any) {
	if len(w.kv) == 0 {
		w.Base.Log(level, msg, kv...)
		return
	}

	all := make([]any, 0, len(w.kv)+len(kv))
	all = append(all, w.kv...)
	all = append(all, kv...)
	w.Base.Log(level, msg, all...)
}

func (w *LevelWrapper) Debug(msg string, kv ...any) {
	w.Log(DebugLevel, msg, kv...)
}

func (w *LevelWrapper) Info(msg string, kv ...any) {
	w.Log(InfoLevel, msg, kv...)
}

func (w *LevelWrapper) Warn(msg string, kv ...any) {
	w.Log(WarnLevel, msg, kv...)
}

func (w *LevelWrapper) Error(msg string, kv ...any) {
	w.Log(ErrorLevel, msg, kv...)
}

func (w *LevelWrapper) With(kv ...any) Logger {
	fields := make([]any, 0, len(w.kv)+len(kv))
	fields = append(fields, w.kv...)
	fields = append(fields, kv...)
	return &LevelWrapper{Base: w.Base, kv: fields}
}
