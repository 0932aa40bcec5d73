package types

// EntityID implementations let collection controllers key entities without
// reflection.

func (n NeedRequest) EntityID() string { return n.ID }

func (d Donation) EntityID() string { return d.ID }

func (s StockItem) EntityID() string { return s.ID }

func (l EcoHabitLog) EntityID() string { return l.ID }

func (e CommunityEvent) EntityID() string { return e.ID }
