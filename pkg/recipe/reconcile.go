package recipe

import (
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

// Reconcile splits the requested ingredient names into rows that already
// exist and new, not yet persisted rows. It looks the names up in one query;
// the result holds exactly one entry per distinct name. Inserting the new
// rows is left to the caller's transaction.
func Reconcile(tx *gorm.DB, names []string) (existing, fresh []entities.Ingredient, err error) {
	names = uniqueNames(names)
	if len(names) == 0 {
		return nil, nil, nil
	}

	if err := tx.Where("name IN ?", names).Find(&existing).Error; err != nil {
		return nil, nil, err
	}

	found := make(map[string]struct{}, len(existing))
	for _, ing := range existing {
		found[ing.Name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := found[name]; !ok {
			fresh = append(fresh, entities.Ingredient{Name: name})
		}
	}
	return existing, fresh, nil
}
