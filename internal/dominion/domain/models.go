package domain

// Models 本上下文的全部持久化模型，启动时 AutoMigrate 用。
func Models() []any {
	return []any{
		&Round{},
		&Realm{},
		&Dominion{},
		&ExplorationQueue{},
		&ConstructionQueue{},
		&TrainingQueue{},
		&ActiveSpell{},
		&DominionHistory{},
	}
}
