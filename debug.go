package csstree

// String returns the serialized form of the rule.
func (r *AtRule) String() string {
	return StringifyNode(r, nil)
}

// String returns the serialized form of the rule.
func (r *QualifiedRule) String() string {
	return StringifyNode(r, nil)
}

// String returns the serialized form of the rule.
func (r *StyleRule) String() string {
	return StringifyNode(r, nil)
}

// String returns the serialized form of the block.
func (b *SimpleBlock) String() string {
	return StringifyNode(b, nil)
}

// String returns the serialized form of the function.
func (f *Function) String() string {
	return StringifyNode(f, nil)
}

// String returns the verbatim source of the declaration.
func (d *Declaration) String() string {
	return d.Tokens.String()
}

// String returns the verbatim source of the property.
func (p *Property) String() string {
	return p.Tokens.String()
}
