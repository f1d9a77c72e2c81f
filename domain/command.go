package domain

// Command is a parsed user intent extracted from an incoming message.
type Command interface {
	TriggerRef() MessageRef
}

type StartCommand struct {
	Message IncomingMessage
}

func (c StartCommand) TriggerRef() MessageRef { return c.Message.Ref }

type HelpCommand struct {
	Message IncomingMessage
}

func (c HelpCommand) TriggerRef() MessageRef { return c.Message.Ref }

type ToggleAutoDeleteCommand struct {
	Message IncomingMessage
}

func (c ToggleAutoDeleteCommand) TriggerRef() MessageRef { return c.Message.Ref }

// UploadURLCommand transfers the file behind a raw URL.
type UploadURLCommand struct {
	Message IncomingMessage
	FileURL string
}

func (c UploadURLCommand) TriggerRef() MessageRef { return c.Message.Ref }

// TransferLinksCommand transfers a bounded range of messages starting at
// From, each as an independent job.
type TransferLinksCommand struct {
	Message IncomingMessage
	From    MessageRef
	Count   int
}

func (c TransferLinksCommand) TriggerRef() MessageRef { return c.Message.Ref }

// TransferDocumentCommand transfers the file attached to the message itself.
type TransferDocumentCommand struct {
	Message IncomingMessage
}

func (c TransferDocumentCommand) TriggerRef() MessageRef { return c.Message.Ref }

// UsageCommand is produced for a recognized but malformed command and
// carries the usage text to show.
type UsageCommand struct {
	Message  IncomingMessage
	Response string
}

func (c UsageCommand) TriggerRef() MessageRef { return c.Message.Ref }
