package main

import (
	"sharefit/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.FollowModel{},
		model.RefreshTokenModel{},
		model.WorkoutModel{},
		model.WorkoutSetModel{},
		model.FeedModel{},
		model.FeedLikeModel{},
		model.FeedCommentModel{},
		model.GroupModel{},
		model.GroupMemberModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
