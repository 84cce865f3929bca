package scenes

// SceneChanger swaps the scene the game is running.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
