package gribmeta

// CenterName names an originating center (common code table C-11).
func (r *Resolver) CenterName(center int) (string, bool) {
	return r.tables.CenterName(center)
}

// SubCenterName names a sub-center of center.
func (r *Resolver) SubCenterName(center, subCenter int) (string, bool) {
	return r.tables.SubCenterName(center, subCenter)
}

// ProcessName names a generating process of center.
func (r *Resolver) ProcessName(center, process int) (string, bool) {
	return r.tables.ProcessName(center, process)
}
