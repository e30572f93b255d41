package tailer

import (
	"context"
	"io"

	"github.com/nxadm/tail"
	"go.uber.org/zap"
)

// Options controls how a sink file is read.
// Options 控制读取 Sink 文件的方式。
type Options struct {
	// Follow keeps reading as the file grows and across rotation.
	// Follow 在文件增长及轮转后继续读取。
	Follow bool
	// FromEnd skips existing content and starts at the end of the file.
	// FromEnd 跳过已有内容，从文件末尾开始。
	FromEnd bool
}

// Tail streams lines of filename to fn until the file is exhausted
// (without Follow) or ctx is cancelled.
// Tail 将 filename 的行传递给 fn，直到文件读完（未开启 Follow）或 ctx 被取消。
func Tail(ctx context.Context, filename string, opts Options, log *zap.Logger, fn func(line string)) error {
	config := tail.Config{
		Follow:    opts.Follow,
		ReOpen:    opts.Follow, // Handle sink rotation
		MustExist: !opts.Follow,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
	}
	if opts.FromEnd {
		config.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(filename, config)
	if err != nil {
		return err
	}
	defer t.Cleanup()

	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return t.Wait()
			}
			if line.Err != nil {
				log.Warn("error reading sink file", zap.String("file", filename), zap.Error(line.Err))
				continue
			}
			fn(line.Text)
		}
	}
}
