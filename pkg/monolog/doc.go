// Package monolog is a small structured-logging facade built around a
// chainable log event and an explicit logging context.
//
// # Overview
//
// An Event carries a unique identifier, an optional link to a parent event,
// the call site, a message and a severity. A Context owns the commit pipeline:
// it stamps the call site, renders the event through the active Formatter and
// hands the text to the active Sink, which filters by threshold and writes.
// Two notifications report commits that found no sink and commits that
// reached one.
//
// Quick start
//
//	ctx := monolog.NewContext(monolog.WithFormatter(monolog.DefaultFormatter{}))
//	if err := ctx.CreateSink("/var/log/app/app.log"); err != nil {
//	    return err
//	}
//	parent := ctx.CommitCaller(ctx.NewEvent().SetMessage("request started"))
//	e, err := ctx.NewEvent().
//	    LinkTo(parent).
//	    SetSeverity(monolog.WarningLevel).
//	    SetMessageFormat("retry {0} of {1}", 2, 5)
//	if err == nil {
//	    ctx.CommitCaller(e)
//	}
//
// # Sinks
//
// ZapSink writes through go.uber.org/zap with lumberjack rotation; its
// threshold is a zap.AtomicLevel, so SetMinLevel applies immediately.
// FilterSink adds an expr-lang expression in front of any sink.
//
// Package monolog 提供以链式日志事件和显式日志上下文为核心的结构化日志门面。
package monolog
