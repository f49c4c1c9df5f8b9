package core

import "image/color"

const ArenaWidth = 960  // 遊戲區域寬
const ArenaHeight = 540 // 遊戲區域高

const PaddleWidth = 10
const PaddleHeight = 100
const PlayerSpeed = 7
const OpponentSpeed = 6
const OpponentCounterSpeed = 8 // 對手往上修正的固定速度

const BallSize = 30
const BallRadius = 15
const BallStartSpeed = 6

const PaddleTolerance = 20 // 判斷撞到球拍哪一邊的容許距離

const CountdownMillis = 2000 // 得分後球暫停的時間
const RampIntervalMillis = 5000
const RampMaxSpeed = 12 // 球水平速度超過此值就不再加速

const TargetFPS = 60

var BackgroundColor = color.RGBA{R: 30, G: 39, B: 46, A: 255}
var PrimaryColor = color.RGBA{R: 211, G: 84, B: 0, A: 255}
var ScoreColor = color.RGBA{R: 116, G: 185, B: 255, A: 255}

var CountdownThreeColor = color.RGBA{R: 163, G: 203, B: 56, A: 255}
var CountdownTwoColor = color.RGBA{R: 18, G: 137, B: 167, A: 255}
var CountdownOneColor = color.RGBA{R: 237, G: 76, B: 103, A: 255}
