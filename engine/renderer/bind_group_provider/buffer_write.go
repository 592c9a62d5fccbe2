package bind_group_provider

// BufferWrite stages one queue write against a provider's buffer. The host
// builds a slice of these each frame (the camera uniform upload) and hands
// them to the renderer's WriteBuffers in a single call.
type BufferWrite struct {
	// Provider owns the buffer being written.
	Provider BindGroupProvider
	// Binding selects which of the provider's buffers to write.
	Binding int
	// Offset is the byte offset into the buffer.
	Offset uint64
	// Data is the raw bytes to upload.
	Data []byte
}
