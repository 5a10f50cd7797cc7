package backend

func (b *Backend) truncate() {
	b.log.WithField("rows", b.table.Len()).Debug("truncating customer table")
	b.table.Clear()
}
